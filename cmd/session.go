package cmd

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/careerpath/internal/model"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Set the current user",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		id, _ := cmd.Flags().GetString("id")
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		if id == "" {
			id = uuid.NewString()
		}

		u := &model.User{ID: id, Name: name, Email: email, CreatedAt: time.Now()}
		if err := e.store.SessionRepo().Login(cmd.Context(), u); err != nil {
			return fmt.Errorf("login: %w", err)
		}
		e.log.Info("logged in", "user", u.ID)
		fmt.Fprintf(cmd.OutOrStdout(), "%s 님으로 로그인했습니다. (%s)\n", u.Name, u.ID)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the current user",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.store.SessionRepo().Logout(cmd.Context()); err != nil {
			return fmt.Errorf("logout: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "로그아웃했습니다.")
		return nil
	},
}

func init() {
	loginCmd.Flags().String("id", "", "User id (default: a new random id)")
	loginCmd.Flags().String("name", "", "Display name")
	loginCmd.Flags().String("email", "", "Email address")
	_ = loginCmd.MarkFlagRequired("name")
}
