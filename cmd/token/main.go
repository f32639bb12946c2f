package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/donbrown-bioscope/linkedin-auto-posts/pkg/linkedin"
)

// One-time interactive helper that walks the LinkedIn authorization-code
// flow and prints the access token the poster needs. Register
// http://localhost:<port>/callback as a redirect URL on the LinkedIn
// developer app before running this.

const (
	oauthState      = "bioscope_linkedin_auth"
	callbackTimeout = 2 * time.Minute
)

var (
	clientID     string
	clientSecret string
	port         int
)

func main() {
	godotenv.Load()

	rootCmd := &cobra.Command{
		Use:          "token",
		Short:        "Obtain a LinkedIn access token via interactive OAuth",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}

	rootCmd.Flags().StringVar(&clientID, "client-id", os.Getenv("LINKEDIN_CLIENT_ID"), "LinkedIn app client ID")
	rootCmd.Flags().StringVar(&clientSecret, "client-secret", os.Getenv("LINKEDIN_CLIENT_SECRET"), "LinkedIn app client secret")
	rootCmd.Flags().IntVar(&port, "port", 8000, "local port for the OAuth callback")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("LinkedIn OAuth Token Generator for Bioscope.AI")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)
	if clientID == "" {
		clientID = promptLine(reader, "Enter your LinkedIn Client ID: ")
	}
	if clientSecret == "" {
		clientSecret = promptLine(reader, "Enter your LinkedIn Client Secret: ")
	}
	if clientID == "" || clientSecret == "" {
		return errors.New("client ID and secret are required")
	}

	redirectURI := fmt.Sprintf("http://localhost:%d/callback", port)
	authURL := linkedin.AuthorizationURL(clientID, redirectURI, oauthState)

	fmt.Println()
	fmt.Println("Opening browser for LinkedIn authorization...")
	fmt.Println("(If the browser doesn't open, copy this URL manually)")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()

	openBrowser(authURL)

	fmt.Println("Waiting for authorization callback...")
	fmt.Printf("(Local server running on http://localhost:%d)\n\n", port)

	code, err := awaitCallback(ctx, port)
	if err != nil {
		return err
	}

	fmt.Println("Received authorization code!")
	fmt.Println("Exchanging for access token...")
	fmt.Println()

	token, err := linkedin.ExchangeCode(ctx, code, clientID, clientSecret, redirectURI)
	if err != nil {
		return fmt.Errorf("exchanging authorization code: %w", err)
	}

	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("SUCCESS! Here are your credentials:")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println()
	fmt.Println("ACCESS TOKEN (save this as LINKEDIN_ACCESS_TOKEN):")
	fmt.Println(token.AccessToken)
	fmt.Println()
	fmt.Printf("Token expires in: %d days\n\n", token.ExpiresIn/86400)

	client := linkedin.NewClient(token.AccessToken)

	if info, err := client.UserInfo(ctx); err == nil {
		fmt.Printf("Authenticated as: %s\n", info.Name)
		fmt.Printf("Email: %s\n\n", info.Email)
	}

	fmt.Println("Checking organization access...")
	printOrganizations(ctx, client)

	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("Next steps:")
	fmt.Println("1. Add LINKEDIN_ACCESS_TOKEN to your GitHub secrets")
	fmt.Printf("2. Set a reminder to refresh the token in %d days\n", token.ExpiresIn/86400)
	fmt.Println(strings.Repeat("=", 60))

	return nil
}

// awaitCallback runs a transient local listener and blocks until the
// authorization redirect delivers a code, an error, or the timeout
// expires. Single-shot: the first callback wins and the server is shut
// down afterwards.
func awaitCallback(ctx context.Context, port int) (string, error) {
	type callbackResult struct {
		code string
		err  error
	}
	resultCh := make(chan callbackResult, 1)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.GET("/callback", func(c *gin.Context) {
		if errParam := c.Query("error"); errParam != "" {
			desc := c.Query("error_description")
			c.String(http.StatusOK, "Error: %s - %s", errParam, desc)
			select {
			case resultCh <- callbackResult{err: fmt.Errorf("authorization denied: %s - %s", errParam, desc)}:
			default:
			}
			return
		}

		code := c.Query("code")
		c.Header("Content-Type", "text/html")
		c.String(http.StatusOK, `<html><body><h1>✅ Authorization successful!</h1>
<p>You can close this window and return to the terminal.</p></body></html>`)

		select {
		case resultCh <- callbackResult{code: code}:
		default:
		}
	})

	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: router}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			select {
			case resultCh <- callbackResult{err: fmt.Errorf("callback server: %w", err)}:
			default:
			}
		}
	}()

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	select {
	case res := <-resultCh:
		if res.err != nil {
			return "", res.err
		}
		if res.code == "" {
			return "", errors.New("callback did not include an authorization code")
		}
		return res.code, nil
	case <-time.After(callbackTimeout):
		return "", errors.New("timeout waiting for authorization")
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func printOrganizations(ctx context.Context, client *linkedin.Client) {
	orgs, err := client.OrganizationACLs(ctx)
	if err != nil || len(orgs) == 0 {
		fmt.Println("No organization access found.")
		fmt.Println("Make sure your LinkedIn app has organization posting permissions.")
		return
	}

	fmt.Println()
	fmt.Println("Organizations you can post to:")
	for _, org := range orgs {
		orgID := org.Organization
		if i := strings.LastIndex(orgID, ":"); i >= 0 {
			orgID = orgID[i+1:]
		}
		fmt.Printf("  - Organization ID: %s (Role: %s)\n", orgID, org.Role)
	}
	fmt.Println()
	fmt.Println("Save the Organization ID as LINKEDIN_ORG_ID")
}

func promptLine(reader *bufio.Reader, prompt string) string {
	fmt.Print(prompt)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	cmd.Start()
}
