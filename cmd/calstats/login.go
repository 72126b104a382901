package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"eventhorizon/utils"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
)

var loginPort int

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authorize access to your Google Calendar",
	Long: `login opens your browser for the Google OAuth consent flow and saves
the resulting token next to your credentials for later runs.`,
	RunE: runLogin,
}

func init() {
	loginCmd.Flags().IntVar(&loginPort, "port", 8095, "local port for the OAuth redirect")
}

func runLogin(cmd *cobra.Command, args []string) error {
	applyAuthPaths()
	oauthCfg, err := utils.GoogleOAuthConfig()
	if err != nil {
		return err
	}
	oauthCfg.RedirectURL = fmt.Sprintf("http://127.0.0.1:%d/", loginPort)

	authURL := oauthCfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	if err := browser.OpenURL(authURL); err != nil {
		printStatus(cmd.OutOrStdout(), "Could not open a browser automatically.")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Go to the following link in your browser:\n%s\n", authURL)

	code, err := waitForAuthCode(loginPort)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	tok, err := oauthCfg.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("exchanging authorization code: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(tokenPath), 0700); err != nil {
		return fmt.Errorf("creating token directory: %w", err)
	}
	if err := utils.SaveToken(tokenPath, tok); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Token saved to %s\n", tokenPath)
	return nil
}

// waitForAuthCode runs a one-shot local HTTP server that captures the OAuth
// redirect and hands back the authorization code.
func waitForAuthCode(port int) (string, error) {
	codeCh := make(chan string, 1)
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			http.Error(w, "missing code parameter", http.StatusBadRequest)
			return
		}
		fmt.Fprintln(w, "Authorized. You can close this tab.")
		codeCh <- code
	})
	srv := &http.Server{Addr: fmt.Sprintf("127.0.0.1:%d", port), Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var code string
	select {
	case code = <-codeCh:
	case err := <-errCh:
		return "", fmt.Errorf("waiting for OAuth redirect: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	return code, nil
}
