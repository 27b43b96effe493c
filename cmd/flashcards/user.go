package main

import (
	"fmt"

	"go_flashcards/internal/model"
	"go_flashcards/internal/repository"
	"go_flashcards/internal/service"
	"go_flashcards/internal/webutil"

	"github.com/spf13/cobra"
)

func newUserCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}
	cmd.AddCommand(newUserCreateCmd(opts))
	return cmd
}

func newUserCreateCmd(opts *rootOptions) *cobra.Command {
	var req model.CreateUserRequest
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user and print its ID",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := webutil.Validator.Struct(req); err != nil {
				return err
			}

			cfg, logger, err := loadConfig(opts)
			if err != nil {
				return err
			}
			db, err := repository.NewDB(cfg.Database, logger)
			if err != nil {
				return err
			}
			if sqlDB, err := db.DB(); err == nil {
				defer sqlDB.Close()
			}

			user, err := service.NewUserService(db, repository.NewGormUserRepository()).CreateUser(cmd.Context(), &req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), user.ID.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "display name")
	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
