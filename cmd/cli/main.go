package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "c3s-cli",
		Short: "Cash-flow ledger CLI tool",
		Long:  `A command line interface for interacting with the cash-flow ledger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the ledger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Entry commands
	entryCmd := &cobra.Command{
		Use:   "entry",
		Short: "Entry operations",
	}
	entryCmd.AddCommand(entryCreateCmd(), entryListCmd(), entryDeleteCmd())
	rootCmd.AddCommand(entryCmd)

	// Report command
	rootCmd.AddCommand(reportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func entryCreateCmd() *cobra.Command {
	var (
		amount      string
		day         int
		class       string
		origin      int
		destination int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a ledger entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]any{
				"amount": amount,
				"day":    day,
				"class":  class,
			}
			if cmd.Flags().Changed("origin") {
				payload["origin"] = origin
			}
			if cmd.Flags().Changed("destination") {
				payload["destination"] = destination
			}

			body, err := json.Marshal(payload)
			if err != nil {
				return err
			}

			resp, err := doRequest(http.MethodPost, "/api/v1/entries", bytes.NewReader(body))
			if err != nil {
				return err
			}

			printJSON(resp)
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "Entry amount, e.g. 150.75")
	cmd.Flags().IntVar(&day, "day", 0, "Day of the month (1-30)")
	cmd.Flags().StringVar(&class, "class", "", "Classification: Revenue, Cost or Expense")
	cmd.Flags().IntVar(&origin, "origin", 0, "Origin account (1-10), where incoming money came from")
	cmd.Flags().IntVar(&destination, "destination", 0, "Destination account (1-10), where outgoing money went")
	cmd.MarkFlagRequired("amount")
	cmd.MarkFlagRequired("day")
	cmd.MarkFlagRequired("class")

	return cmd
}

func entryListCmd() *cobra.Command {
	var (
		by    string
		value string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List ledger entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/entries"
			if by != "" {
				path = fmt.Sprintf("%s?by=%s&value=%s", path, by, value)
			}

			resp, err := doRequest(http.MethodGet, path, nil)
			if err != nil {
				return err
			}

			printJSON(resp)
			return nil
		},
	}

	cmd.Flags().StringVar(&by, "by", "", "Filter field: day, origin, destination or amount")
	cmd.Flags().StringVar(&value, "value", "", "Filter value")

	return cmd
}

func entryDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a ledger entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := doRequest(http.MethodDelete, "/api/v1/entries/"+args[0], nil)
			if err != nil {
				return err
			}

			fmt.Println("deleted")
			return nil
		},
	}
}

func reportCmd() *cobra.Command {
	var (
		day    int
		period int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a cash-flow report",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/report/text?day=%d&period=%d", day, period)
			if asJSON {
				path = fmt.Sprintf("/api/v1/report?day=%d&period=%d", day, period)
			}

			resp, err := doRequest(http.MethodGet, path, nil)
			if err != nil {
				return err
			}

			if asJSON {
				printJSON(resp)
				return nil
			}

			fmt.Print(string(resp))
			return nil
		},
	}

	cmd.Flags().IntVar(&day, "day", 0, "Reference day (1-30)")
	cmd.Flags().IntVar(&period, "period", 7, "Number of days the report looks back")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output the report as JSON instead of text")
	cmd.MarkFlagRequired("day")

	return cmd
}

// doRequest performs an HTTP request against the API and returns the
// response body. Non-2xx statuses are reported as errors.
func doRequest(method, path string, body io.Reader) ([]byte, error) {
	client := &http.Client{Timeout: timeout}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("request failed (status %d): %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}

// printJSON pretty-prints a JSON response body.
func printJSON(body []byte) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		fmt.Println(string(body))
		return
	}
	fmt.Println(buf.String())
}
