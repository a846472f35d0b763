package cli

import (
	"github.com/spf13/cobra"
)

func (rt *runtime) loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Autentica no backend e salva a sessão",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := rt.services.Sessions.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			renderSession(cmd.OutOrStdout(), session)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email do usuário")
	cmd.Flags().StringVar(&password, "password", "", "senha do usuário")
	return cmd
}

func (rt *runtime) registerCmd() *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Cria uma conta e já autentica",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := rt.services.Sessions.Register(cmd.Context(), name, email, password)
			if err != nil {
				return err
			}
			renderSession(cmd.OutOrStdout(), session)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "nome do usuário")
	cmd.Flags().StringVar(&email, "email", "", "email do usuário")
	cmd.Flags().StringVar(&password, "password", "", "senha do usuário")
	return cmd
}

func (rt *runtime) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Encerra a sessão e remove a credencial salva",
		RunE: func(cmd *cobra.Command, args []string) error {
			renderSession(cmd.OutOrStdout(), rt.services.Sessions.Logout(cmd.Context()))
			return nil
		},
	}
}

func (rt *runtime) sessionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Mostra o usuário da sessão atual",
		RunE: func(cmd *cobra.Command, args []string) error {
			renderSession(cmd.OutOrStdout(), rt.services.Sessions.Session())
			return nil
		},
	}
}
