// Package options validates the interval lengths given on the command line.
package options

import "fmt"

const (
	DefaultWorkMinutes = 25
	DefaultRestMinutes = 5

	// MaxMinutes caps one interval at a day.
	MaxMinutes = 24 * 60
)

// OptionValueError reports a flag whose value is out of range. Max is set
// when the value was too large.
type OptionValueError struct {
	Option string
	Value  int
	Max    int
}

func (e *OptionValueError) Error() string {
	if e.Max > 0 {
		return fmt.Sprintf("option %s: invalid value %d, must be at most %d", e.Option, e.Value, e.Max)
	}
	return fmt.Sprintf("option %s: invalid value %d, must be a positive integer", e.Option, e.Value)
}

// CheckPositiveInteger returns value unchanged when it is greater than zero.
func CheckPositiveInteger(option string, value int) (int, error) {
	if value <= 0 {
		return 0, &OptionValueError{Option: option, Value: value}
	}
	return value, nil
}

// CheckMinutes accepts an interval length between 1 and MaxMinutes.
func CheckMinutes(option string, value int) (int, error) {
	if _, err := CheckPositiveInteger(option, value); err != nil {
		return 0, err
	}
	if value > MaxMinutes {
		return 0, &OptionValueError{Option: option, Value: value, Max: MaxMinutes}
	}
	return value, nil
}

// Options holds interval lengths in minutes.
type Options struct {
	Work int
	Rest int
}

func Default() Options {
	return Options{Work: DefaultWorkMinutes, Rest: DefaultRestMinutes}
}

func (o Options) Validate() error {
	return o.ValidateAs("--work", "--rest")
}

// ValidateAs checks both lengths, naming them workName and restName in
// errors.
func (o Options) ValidateAs(workName, restName string) error {
	if _, err := CheckMinutes(workName, o.Work); err != nil {
		return err
	}
	if _, err := CheckMinutes(restName, o.Rest); err != nil {
		return err
	}
	return nil
}

func (o Options) WorkSeconds() int { return o.Work * 60 }
func (o Options) RestSeconds() int { return o.Rest * 60 }
