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
		Use:   "caixa-cli",
		Short: "Caixa CLI tool",
		Long:  `A command line interface for interacting with the Caixa register API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the Caixa API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Sale commands
	saleCmd := &cobra.Command{
		Use:   "sale",
		Short: "Sale operations",
	}

	var seller, payment, note, amount, receipt string

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Record a sale",
		Run: func(cmd *cobra.Command, args []string) {
			addSale(seller, payment, note, amount, receipt)
		},
	}
	addCmd.Flags().StringVar(&seller, "seller", "", "Seller name")
	addCmd.Flags().StringVar(&payment, "payment", "", "Payment selection, e.g. \"Dinheiro\" or \"Visa - Crédito\"")
	addCmd.Flags().StringVar(&note, "note", "", "Machine or origin note")
	addCmd.Flags().StringVar(&amount, "amount", "", "Amount, comma or dot decimals")
	addCmd.Flags().StringVar(&receipt, "receipt", "", "Receipt number")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the day's sales",
		Run: func(cmd *cobra.Command, args []string) {
			listSales()
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [index]",
		Short: "Delete a sale by its position",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			deleteSale(args[0])
		},
	}

	saleCmd.AddCommand(addCmd, listCmd, deleteCmd)
	rootCmd.AddCommand(saleCmd)

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the running totals",
		Run: func(cmd *cobra.Command, args []string) {
			showSummary()
		},
	}
	rootCmd.AddCommand(summaryCmd)

	var export bool
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Print the day report",
		Run: func(cmd *cobra.Command, args []string) {
			if export {
				exportReport()
				return
			}
			showReport()
		},
	}
	reportCmd.Flags().BoolVar(&export, "export", false, "Export the report to a file on the server")
	rootCmd.AddCommand(reportCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func addSale(seller, payment, note, amount, receipt string) {
	payload, _ := json.Marshal(map[string]string{
		"seller":         seller,
		"payment":        payment,
		"note":           note,
		"amount":         amount,
		"receipt_number": receipt,
	})

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+"/api/v1/sales", "application/json", bytes.NewReader(payload))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusCreated {
		fmt.Printf("Sale NOT recorded (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var sale struct {
		Index           int    `json:"index"`
		Seller          string `json:"seller"`
		FormattedAmount string `json:"formatted_amount"`
		RecordedAt      string `json:"timestamp"`
	}
	if err := json.Unmarshal(body, &sale); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Sale recorded at index %d\n", sale.Index)
	fmt.Printf("Seller: %s\nAmount: %s\nAt: %s\n", sale.Seller, sale.FormattedAmount, sale.RecordedAt)
}

func listSales() {
	body := get("/api/v1/sales")

	var result struct {
		Sales []struct {
			Index           int    `json:"index"`
			Seller          string `json:"seller"`
			Category        string `json:"payment_category"`
			Detail          string `json:"payment_detail"`
			FormattedAmount string `json:"formatted_amount"`
			Receipt         string `json:"receipt_number"`
			ExchangeLabel   string `json:"exchange_label"`
			RecordedAt      string `json:"timestamp"`
		} `json:"sales"`
		Total int `json:"total"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	for _, s := range result.Sales {
		payment := s.Category
		if s.Detail != "" {
			payment += " - " + s.Detail
		}
		fmt.Printf("%3d  %-12s %-28s %12s  Cupom %-8s Troca: %s  %s\n",
			s.Index, s.Seller, payment, s.FormattedAmount, s.Receipt, s.ExchangeLabel, s.RecordedAt)
	}
	fmt.Printf("Total: %d venda(s)\n", result.Total)
}

func deleteSale(index string) {
	client := &http.Client{Timeout: timeout}
	req, err := http.NewRequest(http.MethodDelete, baseURL+"/api/v1/sales/"+index, nil)
	if err != nil {
		fmt.Printf("Error building request: %v\n", err)
		os.Exit(1)
	}

	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Delete FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var result struct {
		Removed struct {
			Seller          string `json:"seller"`
			FormattedAmount string `json:"formatted_amount"`
		} `json:"removed"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Removed sale: %s %s\n", result.Removed.Seller, result.Removed.FormattedAmount)
}

func showSummary() {
	body := get("/api/v1/summary")

	var result struct {
		FormattedTotal string `json:"formatted_total"`
		ByPayment      []struct {
			Key             string `json:"key"`
			FormattedAmount string `json:"formatted_amount"`
		} `json:"by_payment"`
		ByBrand []struct {
			Key             string `json:"key"`
			FormattedAmount string `json:"formatted_amount"`
		} `json:"by_brand"`
		ExchangeTotal string `json:"exchange_total"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Total: %s\n", result.FormattedTotal)
	for _, entry := range result.ByPayment {
		fmt.Printf("  %-32s %12s\n", entry.Key, entry.FormattedAmount)
	}
	if len(result.ByBrand) > 0 {
		fmt.Println("Por bandeira:")
		for _, entry := range result.ByBrand {
			fmt.Printf("  %-32s %12s\n", entry.Key, entry.FormattedAmount)
		}
	}
	fmt.Printf("Trocas: R$ %s\n", result.ExchangeTotal)
}

func showReport() {
	body := get("/api/v1/report")
	fmt.Print(string(body))
}

func exportReport() {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+"/api/v1/report/export", "application/json", nil)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Export FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var result struct {
		Filename string `json:"filename"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Report exported to %s\n", result.Filename)
}

func get(path string) []byte {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	return body
}
