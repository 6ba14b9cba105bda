package systembolaget

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/databolaget/databolaget/internal/core/domain"
	"github.com/databolaget/databolaget/internal/core/ports/driven"
	"github.com/databolaget/databolaget/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.CatalogSource = (*Client)(nil)

// Progress messages shown around the assortment fetch.
const (
	fetchingLabel = "Fetching full assortment…"
	fetchedLabel  = "Done fetching full assortment."
)

// commandFunc builds the subprocess. Replaced in tests.
type commandFunc func(ctx context.Context, name string, args ...string) *exec.Cmd

// Client runs the catalog tool.
type Client struct {
	binary   string
	progress driven.ProgressIndicator
	command  commandFunc
}

// NewClient creates a client for the given executable name or path.
// An empty binary uses domain.DefaultCatalogBinary. Progress is optional.
func NewClient(binary string, progress driven.ProgressIndicator) *Client {
	if binary == "" {
		binary = domain.DefaultCatalogBinary
	}
	return &Client{
		binary:   binary,
		progress: progress,
		command:  exec.CommandContext,
	}
}

// Binary returns the executable the client runs.
func (c *Client) Binary() string {
	return c.binary
}

// FullAssortment fetches every product sorted by name ascending.
func (c *Client) FullAssortment(ctx context.Context) ([]domain.Product, error) {
	stdout, err := c.run(ctx, "assortment", "--sort-by", "Name", "--sort", "ascending")
	if err != nil {
		return nil, err
	}
	return decodeProducts(stdout)
}

// run executes the tool with args while the progress indicator is shown.
// The indicator is stopped exactly once, whatever the outcome.
func (c *Client) run(ctx context.Context, args ...string) ([]byte, error) {
	cmd := c.command(ctx, c.binary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debug("running %s %s", c.binary, strings.Join(args, " "))

	if c.progress != nil {
		c.progress.Start(fetchingLabel)
	}
	runErr := cmd.Run()
	if c.progress != nil {
		c.progress.Stop(fetchedLabel)
	}

	if runErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, c.toolError(runErr, stderr.String())
	}

	logger.Debug("%s wrote %d bytes", c.binary, stdout.Len())
	return stdout.Bytes(), nil
}

func (c *Client) toolError(runErr error, stderr string) error {
	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		return &domain.ExternalToolError{
			Binary:   c.binary,
			ExitCode: exitErr.ExitCode(),
			Stderr:   stderr,
			Err:      runErr,
		}
	}
	// The process never started, e.g. the binary is not on PATH.
	return &domain.ExternalToolError{
		Binary:   c.binary,
		ExitCode: -1,
		Stderr:   runErr.Error(),
		Err:      runErr,
	}
}

// decodeProducts parses the tool's stdout as a JSON array of objects.
// Numbers are kept as json.Number.
func decodeProducts(data []byte) ([]domain.Product, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var items []any
	if err := dec.Decode(&items); err != nil {
		return nil, &domain.MalformedResponseError{Reason: "decoding product list", Err: err}
	}
	if items == nil {
		return nil, &domain.MalformedResponseError{Reason: "expected a JSON array, got null"}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &domain.MalformedResponseError{Reason: "unexpected data after product list"}
	}

	products := make([]domain.Product, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, &domain.MalformedResponseError{
				Reason: fmt.Sprintf("product %d is %s, not an object", i, jsonKind(item)),
			}
		}
		products[i] = domain.Product(obj)
	}
	return products, nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "a string"
	case json.Number:
		return "a number"
	case bool:
		return "a boolean"
	case []any:
		return "an array"
	default:
		return fmt.Sprintf("%T", v)
	}
}
