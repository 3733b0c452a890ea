package utils

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// PromptForConfirmation prompts the user for confirmation before destructive
// operations such as overwriting an existing report. If autoApprove is true,
// it returns true without prompting. The action parameter describes what will
// happen (e.g., "overwrite report"), details identifies the target.
func PromptForConfirmation(autoApprove bool, action, details string) (bool, error) {
	if autoApprove {
		return true, nil
	}

	fmt.Println(Question(fmt.Sprintf("About to %s", action), details))
	fmt.Print("Are you sure you want to continue? (yes/no): ")

	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("failed to read user confirmation: %w", err)
	}

	input = strings.ToLower(strings.TrimSpace(input))
	return input == "yes" || input == "y", nil
}
