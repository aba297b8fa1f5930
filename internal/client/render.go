// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/MKhiriev/go-bank-client/internal/utils"
	"github.com/MKhiriev/go-bank-client/models"
)

const dateLayout = "2006-01-02 15:04"

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func renderProfile(w io.Writer, p models.Profile) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "Name:\t%s\n", p.DisplayName())
	fmt.Fprintf(tw, "Username:\t%s\n", p.Username)
	if p.Email != "" {
		fmt.Fprintf(tw, "Email:\t%s\n", p.Email)
	}
	if p.ImageURL != "" {
		fmt.Fprintf(tw, "Picture:\t%s\n", p.ImageURL)
	}
	renderAccountRows(tw, p.Account())
	return tw.Flush()
}

func renderAccountRows(tw *tabwriter.Writer, acc models.Account) {
	if acc.AccountNumber != "" {
		fmt.Fprintf(tw, "Account:\t%s\n", utils.MaskAccountNumber(acc.AccountNumber))
	}
	if acc.Type != "" {
		fmt.Fprintf(tw, "Type:\t%s\n", acc.Type)
	}
	fmt.Fprintf(tw, "Balance:\t%s\n", utils.FormatCurrency(acc.Balance))
}

func renderUsers(w io.Writer, users []models.Profile) error {
	if len(users) == 0 {
		_, err := fmt.Fprintln(w, "No users found.")
		return err
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "USERNAME\tNAME\tBALANCE")
	for _, u := range users {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", u.Username, u.DisplayName(), utils.FormatCurrency(u.Balance))
	}
	return tw.Flush()
}

func renderTransactions(w io.Writer, history []models.Transaction) error {
	if len(history) == 0 {
		_, err := fmt.Fprintln(w, "No transactions yet.")
		return err
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "DATE\tTYPE\tAMOUNT\tCOUNTERPARTY")
	for _, tx := range history {
		counterparty := tx.Counterparty()
		if counterparty == "" {
			counterparty = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			tx.Date.Local().Format(dateLayout), tx.Type, utils.FormatCurrency(tx.Amount), counterparty)
	}
	return tw.Flush()
}
