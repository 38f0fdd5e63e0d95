package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aac-tools/f2html/packages/http"
	"github.com/spf13/cobra"
)

var callCmd = &cobra.Command{
	Use:   "call <url>",
	Short: "Send a blocking request and print the response body",
	Long: `Send one request, wait for the complete response and print its body.

The status code is not checked: error pages are printed like any other body.

Examples:
  f2html call http://localhost:5000/agents
  f2html call http://localhost:5000/agent -X POST -d '<agent id="7"/>' -t application/xml
  f2html call http://localhost:5000/agent -X PUT --body-file agent.xml
  f2html call http://localhost:5000/agents -i`,
	Args: cobra.ExactArgs(1),
	RunE: callCommand,
}

var (
	methodFlag      string
	bodyFlag        string
	bodyFileFlag    string
	contentTypeFlag string
	timeoutFlag     string
	insecureFlag    bool
	includeFlag     bool
)

func init() {
	callCmd.Flags().StringVarP(&methodFlag, "method", "X", "GET", "HTTP method")
	callCmd.Flags().StringVarP(&bodyFlag, "body", "d", "", "Request body")
	callCmd.Flags().StringVar(&bodyFileFlag, "body-file", "", "Read the request body from a file")
	callCmd.Flags().StringVarP(&contentTypeFlag, "content-type", "t", "", "Content-Type header (omitted when empty)")
	callCmd.Flags().StringVar(&timeoutFlag, "timeout", "", "Request timeout (e.g. 30s); waits indefinitely by default")
	callCmd.Flags().BoolVarP(&insecureFlag, "insecure", "k", false, "Skip SSL certificate validation")
	callCmd.Flags().BoolVarP(&includeFlag, "include", "i", false, "Print the status line, headers and time before the body")
	callCmd.MarkFlagsMutuallyExclusive("body", "body-file")
}

func callCommand(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadRuntime(cmd)
	if err != nil {
		return err
	}

	url := args[0]
	if err := http.ValidateURL(url); err != nil {
		return withExitCode(ExitUsageError, err)
	}

	body := bodyFlag
	if bodyFileFlag != "" {
		data, err := os.ReadFile(bodyFileFlag)
		if err != nil {
			return withExitCode(ExitUsageError, fmt.Errorf("reading body file: %w", err))
		}
		body = string(data)
	}

	timeout := cfg.TimeoutDuration()
	if timeoutFlag != "" {
		timeout, err = time.ParseDuration(timeoutFlag)
		if err != nil {
			return withExitCode(ExitUsageError, fmt.Errorf("invalid timeout %q: %w", timeoutFlag, err))
		}
	}

	client := http.NewClient(
		http.WithLogger(logger),
		http.WithTimeout(timeout),
		http.WithValidateSSL(cfg.GetValidateSSL() && !insecureFlag),
		http.WithProxy(cfg.Proxy),
		http.WithDefaultHeaders(cfg.Headers),
	)

	method := strings.ToUpper(methodFlag)
	out := cmd.OutOrStdout()

	if includeFlag {
		req := http.NewRequest(method, url).
			SetBody(body).
			SetContentType(contentTypeFlag)

		resp, err := client.Do(cmd.Context(), req)
		if err != nil {
			return withExitCode(ExitNetworkError, err)
		}
		if err := resp.WriteHead(out); err != nil {
			return err
		}
		fmt.Fprint(out, resp.BodyString())
		return nil
	}

	text, err := client.CallSyncContext(cmd.Context(), url, body, method, contentTypeFlag)
	if err != nil {
		return withExitCode(ExitNetworkError, err)
	}

	fmt.Fprint(out, text)
	return nil
}
