package systembolaget

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/databolaget/databolaget/internal/core/domain"
	"github.com/databolaget/databolaget/internal/core/ports/driven"
)

// fakeCommand re-runs the test binary as the catalog tool. The scenario
// selects what TestHelperProcess prints.
func fakeCommand(scenario string) commandFunc {
	return func(ctx context.Context, name string, args ...string) *exec.Cmd {
		cs := append([]string{"-test.run=TestHelperProcess", "--", name}, args...)
		cmd := exec.CommandContext(ctx, os.Args[0], cs...)
		cmd.Env = append(os.Environ(), "GO_WANT_HELPER_PROCESS=1", "HELPER_SCENARIO="+scenario)
		return cmd
	}
}

// TestHelperProcess is not a real test; it is the fake catalog tool.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}

	args := os.Args
	for len(args) > 0 && args[0] != "--" {
		args = args[1:]
	}
	if len(args) > 0 {
		args = args[1:]
	}

	switch os.Getenv("HELPER_SCENARIO") {
	case "assortment":
		fmt.Fprint(os.Stdout, `[
  {"categoryLevel1": "Öl", "productNameBold": "Pilsner", "productNameThin": "Urquell", "productNumber": "12345", "volume": 500, "alcoholPercentage": 4.5, "price": 20},
  {"categoryLevel1": "Vin", "productNameBold": "Rött", "productNumber": 9, "price": "99.90"}
]`)
	case "args":
		out, _ := json.Marshal([]map[string]any{{"args": strings.Join(args, " ")}})
		fmt.Fprint(os.Stdout, string(out))
	case "empty":
		fmt.Fprint(os.Stdout, "[]\n")
	case "fail":
		fmt.Fprint(os.Stderr, "connection refused")
		os.Exit(1)
	case "garbage":
		fmt.Fprint(os.Stdout, "<html>maintenance</html>")
	case "null":
		fmt.Fprint(os.Stdout, "null")
	case "object":
		fmt.Fprint(os.Stdout, `{"products": []}`)
	case "scalars":
		fmt.Fprint(os.Stdout, `[{"productNumber": "1"}, "oops"]`)
	case "trailing":
		fmt.Fprint(os.Stdout, `[] []`)
	}
	os.Exit(0)
}

// recordingProgress counts Start and Stop calls.
type recordingProgress struct {
	starts   []string
	stops    []string
	inFlight bool
}

func (r *recordingProgress) Start(label string) {
	r.starts = append(r.starts, label)
	r.inFlight = true
}

func (r *recordingProgress) Stop(message string) {
	r.stops = append(r.stops, message)
	r.inFlight = false
}

// newTestClient takes the port type so that callers without a recorder
// pass an untyped nil.
func newTestClient(scenario string, progress driven.ProgressIndicator) *Client {
	c := NewClient("systembolaget", progress)
	c.command = fakeCommand(scenario)
	return c
}

func TestNewClient_DefaultBinary(t *testing.T) {
	c := NewClient("", nil)

	assert.Equal(t, "systembolaget", c.Binary())
}

func TestFullAssortment_Success(t *testing.T) {
	progress := &recordingProgress{}
	c := newTestClient("assortment", progress)

	products, err := c.FullAssortment(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Öl", products[0][domain.FieldCategory])
	assert.Equal(t, json.Number("500"), products[0][domain.FieldVolume])
	assert.Equal(t, json.Number("9"), products[1][domain.FieldProductNumber])
	assert.Equal(t, "Rött", products[1].DisplayName())

	assert.Equal(t, []string{fetchingLabel}, progress.starts)
	assert.Equal(t, []string{fetchedLabel}, progress.stops)
	assert.False(t, progress.inFlight)
}

func TestFullAssortment_Arguments(t *testing.T) {
	c := newTestClient("args", nil)

	products, err := c.FullAssortment(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "systembolaget assortment --sort-by Name --sort ascending", products[0]["args"])
}

func TestFullAssortment_Empty(t *testing.T) {
	c := newTestClient("empty", nil)

	products, err := c.FullAssortment(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestFullAssortment_ToolFailure(t *testing.T) {
	progress := &recordingProgress{}
	c := newTestClient("fail", progress)

	products, err := c.FullAssortment(context.Background())

	require.Error(t, err)
	assert.Nil(t, products)
	assert.True(t, errors.Is(err, domain.ErrExternalTool))

	var toolErr *domain.ExternalToolError
	require.True(t, errors.As(err, &toolErr))
	assert.Equal(t, 1, toolErr.ExitCode)
	assert.Equal(t, "connection refused", toolErr.Stderr)
	assert.Contains(t, err.Error(), "connection refused")

	// The indicator is stopped on failure too.
	assert.Len(t, progress.starts, 1)
	assert.Len(t, progress.stops, 1)
}

func TestFullAssortment_MissingBinary(t *testing.T) {
	progress := &recordingProgress{}
	c := NewClient("/nonexistent/systembolaget-missing", progress)

	_, err := c.FullAssortment(context.Background())

	require.Error(t, err)
	var toolErr *domain.ExternalToolError
	require.True(t, errors.As(err, &toolErr))
	assert.Equal(t, -1, toolErr.ExitCode)
	assert.NotEmpty(t, toolErr.Stderr)
	assert.Len(t, progress.stops, 1)
}

func TestFullAssortment_Malformed(t *testing.T) {
	scenarios := []string{"garbage", "null", "object", "scalars", "trailing"}

	for _, scenario := range scenarios {
		t.Run(scenario, func(t *testing.T) {
			progress := &recordingProgress{}
			c := newTestClient(scenario, progress)

			products, err := c.FullAssortment(context.Background())

			require.Error(t, err)
			assert.Nil(t, products)
			assert.True(t, errors.Is(err, domain.ErrMalformedResponse), "got %v", err)
			assert.False(t, errors.Is(err, domain.ErrExternalTool))
			assert.Len(t, progress.starts, 1)
			assert.Len(t, progress.stops, 1)
			assert.False(t, progress.inFlight)
		})
	}
}

func TestFullAssortment_WithoutProgress(t *testing.T) {
	c := NewClient("systembolaget", nil)
	c.command = fakeCommand("fail")

	_, err := c.FullAssortment(context.Background())

	assert.True(t, errors.Is(err, domain.ErrExternalTool))
}

func TestFullAssortment_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := newTestClient("assortment", nil)

	_, err := c.FullAssortment(ctx)

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestDecodeProducts_KeepsNumbers(t *testing.T) {
	products, err := decodeProducts([]byte(`[{"price": 12.50, "productNumber": 1234567890123}]`))

	require.NoError(t, err)
	assert.Equal(t, json.Number("12.50"), products[0][domain.FieldPrice])
	assert.Equal(t, json.Number("1234567890123"), products[0][domain.FieldProductNumber])
}

func TestDecodeProducts_ElementKinds(t *testing.T) {
	_, err := decodeProducts([]byte(`[null]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "product 0 is null")

	_, err = decodeProducts([]byte(`[{}, [1]]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "product 1 is an array")
}
