package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var errBadSequenceNumber = errors.New("not a valid sequence number")

func prompt(cmd *cobra.Command, question string) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), question)

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

// promptSequence asks for a 1-based sequence number. Anything that is not a
// positive integer is rejected; range checking is left to the caller.
func promptSequence(cmd *cobra.Command, question string) (int, error) {
	answer, err := prompt(cmd, question)
	if err != nil {
		return 0, err
	}

	number, err := strconv.Atoi(answer)
	if err != nil || number < 1 {
		return 0, errBadSequenceNumber
	}

	return number, nil
}
