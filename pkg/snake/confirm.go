package snake

import (
	"errors"
	"io"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
)

// Confirm asks a yes/no question on the terminal. Anything but yes, including
// esc, is a no. ctrl+c is returned as an error.
func Confirm(label string) (bool, error) {
	return ConfirmWith(label, os.Stdin, os.Stdout)
}

// ConfirmWith is Confirm reading from in and writing to out.
func ConfirmWith(label string, in io.Reader, out io.Writer) (bool, error) {
	templates := &promptui.PromptTemplates{
		Prompt:  "{{ . }} ",
		Valid:   "{{ . | red }} ",
		Invalid: "{{ . | red }} ",
		Success: "{{ . | bold }} ",
	}

	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Templates: templates,
		Stdin:     io.NopCloser(in),
		Stdout:    nopWriteCloser{out},
	}

	result, err := prompt.Run()
	switch {
	case errors.Is(err, promptui.ErrAbort):
		return false, nil
	case err != nil:
		return false, err
	}
	yes, err := ParseBool(result)
	if err != nil {
		return false, nil
	}
	return yes, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// ParseBool is strconv.ParseBool with the addition of Yes/No parsing.
func ParseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "y", "Y", "yes", "YES", "Yes":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "n", "N", "no", "NO", "No":
		return false, nil
	}
	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}
