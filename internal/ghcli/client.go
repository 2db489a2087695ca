// Package ghcli runs the GitHub CLI and maps its output and failures to Go
// values and errors.
package ghcli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"
)

// DefaultTimeout bounds a single gh invocation.
const DefaultTimeout = 30 * time.Second

// Client invokes the gh executable.
type Client struct {
	bin     string
	runner  Runner
	timeout time.Duration
	logger  *log.Logger
}

// NewClient creates a Client that runs bin through runner. A zero timeout
// means DefaultTimeout.
func NewClient(bin string, runner Runner, timeout time.Duration, logger *log.Logger) *Client {
	if bin == "" {
		bin = "gh"
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Client{
		bin:     bin,
		runner:  runner,
		timeout: timeout,
		logger:  logger,
	}
}

// Available reports whether the gh executable can be invoked at all. A
// non-zero exit still counts as available.
func (c *Client) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	_, _, err := c.runner.Run(ctx, c.bin, "--version")
	if err != nil && isNotFound(err) {
		c.logger.Printf("[gh] %s not found: %v", c.bin, err)
		return false
	}
	return true
}

// Run executes gh with args and returns its trimmed stdout.
func (c *Client) Run(ctx context.Context, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	c.logger.Printf("[gh] %s", strings.Join(args, " "))
	stdout, stderr, err := c.runner.Run(ctx, c.bin, args...)
	if err != nil {
		if isNotFound(err) {
			return "", fmt.Errorf("%w: %v", ErrToolUnavailable, err)
		}
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", &ExternalToolError{
				Args:    args,
				Message: fmt.Sprintf("gh command timed out after %s", c.timeout),
				Err:     ctx.Err(),
			}
		}
		msg := strings.TrimSpace(stderr)
		if msg == "" {
			msg = strings.TrimSpace(stdout)
		}
		if msg == "" {
			msg = err.Error()
		}
		return "", &ExternalToolError{Args: args, Message: msg, Err: err}
	}
	return strings.TrimSpace(stdout), nil
}

// InvokeJSON executes gh with args and decodes its stdout into v.
func (c *Client) InvokeJSON(ctx context.Context, v any, args ...string) error {
	out, err := c.Run(ctx, args...)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(out), v); err != nil {
		return &ExternalToolError{
			Args:    args,
			Message: fmt.Sprintf("decoding gh output: %v", err),
			Err:     err,
		}
	}
	return nil
}

// InvokeList executes gh with args and decodes one or more concatenated JSON
// arrays, as printed by "gh api --paginate", into a single slice.
func InvokeList[T any](ctx context.Context, c *Client, args ...string) ([]T, error) {
	out, err := c.Run(ctx, args...)
	if err != nil {
		return nil, err
	}

	items := []T{}
	pages := 0
	dec := json.NewDecoder(strings.NewReader(out))
	for {
		var page []T
		err := dec.Decode(&page)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &ExternalToolError{
				Args:    args,
				Message: fmt.Sprintf("decoding gh output: %v", err),
				Err:     err,
			}
		}
		items = append(items, page...)
		pages++
	}
	if pages == 0 {
		return nil, &ExternalToolError{Args: args, Message: "gh produced no output"}
	}
	return items, nil
}
