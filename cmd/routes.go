package main

import (
	"context"
	"fmt"
	"newsroom/internal/config"
	"newsroom/internal/session"
	"newsroom/internal/web"
	"newsroom/pkg/logger"

	"github.com/go-chi/docgen"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// routesCommand prints the route tree. It builds the router without any
// backing services, so nothing is contacted.
func routesCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Prints the documented route tree",
		Run: func(cmd *cobra.Command, args []string) {
			asJSON, _ := cmd.Flags().GetBool("json")

			r, err := web.NewRouter(web.Deps{
				Sessions: session.NewManager(nil, session.Options{CookieName: cfg.Session.CookieName}),
			}, web.NewOptions(cfg))
			if err != nil {
				logger.Fatal(context.Background(), "could not build router", zap.Error(err))
			}

			if asJSON {
				fmt.Println(docgen.JSONRoutesDoc(r)) //nolint: forbidigo

				return
			}
			fmt.Println(docgen.MarkdownRoutesDoc(r, docgen.MarkdownOpts{ //nolint: forbidigo
				ProjectPath: "newsroom",
				Intro:       "Routes served by the newsroom front-end.",
			}))
		},
	}

	cmd.Flags().Bool("json", false, "Print JSON instead of markdown")

	return cmd
}
