package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/musicschool/payments/internal/reconciler"
)

const (
	keyRetry = "r"
	keyHome  = "h"
)

// session drives one confirmation page: polls, renders every state change and
// handles the retry and home choices of a failed outcome.
type session struct {
	fetcher reconciler.Fetcher
	in      io.Reader
	out     io.Writer
	homeURL string
	opts    []reconciler.Option
}

func (s *session) run(ctx context.Context, params reconciler.Params) error {
	opts := append(slices.Clone(s.opts), reconciler.WithOnChange(s.render))
	r := reconciler.New(s.fetcher, params, opts...)

	s.render(r.Outcome())

	out, err := r.Run(ctx)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(s.in)

	for out.State == reconciler.StateFailed {
		if !scanner.Scan() {
			return scanner.Err()
		}

		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case keyRetry:
			out, err = r.Retry(ctx)
			if err != nil {
				return err
			}
		case keyHome:
			_, err = fmt.Fprintf(s.out, "Returning to %s\n", s.homeURL)
			return err
		default:
			_, err = fmt.Fprintf(s.out, "Press %s to retry or %s to return home\n", keyRetry, keyHome)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

func (s *session) render(out reconciler.Outcome) {
	err := out.Render(s.out)
	if err != nil {
		slog.Error("render outcome", "error", err)
	}
}
