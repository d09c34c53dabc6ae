// Copyright (c) 2026 Keymaster Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/toeirei/keycalc/internal/calc"
	"github.com/toeirei/keycalc/internal/logging"
)

func newEvalCmd() *cobra.Command {
	var showPending bool

	cmd := &cobra.Command{
		Use:   "eval <buttons...>",
		Short: "Press a button sequence and print the display",
		Long: `Presses every button in order, starting from a cleared calculator,
and prints the resulting display. Buttons may be separated by spaces or
written together; ASCII stand-ins are accepted for the operators
(/ * x -), "c" for AC and "n" for ±.

  keycalc eval 12+3=
  keycalc eval 2 + 3 x 4 =
  keycalc eval -- 5 - 8 =`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buttons, err := calc.ParseSequence(strings.Join(args, " "))
			if err != nil {
				return err
			}

			st := calc.NewSession().PressAll(buttons)
			out := cmd.OutOrStdout()
			if showPending && st.Pending() != "" {
				fmt.Fprintln(out, st.Pending())
			}
			_, err = fmt.Fprintln(out, st.Display)
			return err
		},
	}

	cmd.Flags().BoolVarP(&showPending, "pending", "p", false, "Also print the pending operation above the display")
	return cmd
}

// runLines reads one button sequence per line and prints the display after
// each line. The calculation carries over between lines. Lines that cannot
// be parsed are reported on errOut and skipped.
func runLines(in io.Reader, out io.Writer, errOut io.Writer) error {
	session := calc.NewSession()
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		buttons, err := calc.ParseSequence(line)
		if err != nil {
			logging.Warnf("skipping line: %v", err)
			fmt.Fprintf(errOut, "error: %v\n", err)
			continue
		}

		st := session.PressAll(buttons)
		if _, err := fmt.Fprintln(out, st.Display); err != nil {
			return err
		}
	}
	return scanner.Err()
}
