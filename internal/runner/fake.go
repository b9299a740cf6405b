package runner

import (
	"context"
	"fmt"
	"strings"
)

// Response is the canned result of a command run through Fake
type Response struct {
	Output string
	Err    error
}

// Fake implements Runner for testing. Commands are matched on their full
// command line, e.g. "git remote get-url origin".
type Fake struct {
	Responses map[string]Response
	Calls     []string
}

// Output implements the Runner interface
func (f *Fake) Output(ctx context.Context, dir string, name string, args ...string) (string, error) {
	out, err := f.run(name, args)
	return strings.TrimSpace(out), err
}

// Combined implements the Runner interface
func (f *Fake) Combined(ctx context.Context, dir string, name string, args ...string) (string, error) {
	return f.run(name, args)
}

// Attach implements the Runner interface
func (f *Fake) Attach(ctx context.Context, dir string, name string, args ...string) error {
	_, err := f.run(name, args)
	return err
}

// Called reports whether the command line was run
func (f *Fake) Called(line string) bool {
	for _, call := range f.Calls {
		if call == line {
			return true
		}
	}
	return false
}

func (f *Fake) run(name string, args []string) (string, error) {
	line := strings.Join(append([]string{name}, args...), " ")
	f.Calls = append(f.Calls, line)
	resp, ok := f.Responses[line]
	if !ok {
		return "", fmt.Errorf("unexpected command: %s", line)
	}
	return resp.Output, resp.Err
}
