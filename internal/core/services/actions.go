package services

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/databolaget/databolaget/internal/core/domain"
	"github.com/databolaget/databolaget/internal/core/ports/driving"
)

// Operating system identifiers.
const (
	osDarwin  = "darwin"
	osLinux   = "linux"
	osWindows = "windows"
)

// Ensure ProductActionService implements the interface.
var _ driving.ProductActionService = (*ProductActionService)(nil)

// ProductActionService opens and copies product page URLs.
type ProductActionService struct {
	open func(url string) error
	copy func(text string) error
}

// NewProductActionService creates an action service using the platform's
// browser and clipboard commands.
func NewProductActionService() *ProductActionService {
	return &ProductActionService{
		open: openURL,
		copy: copyToClipboard,
	}
}

// OpenProduct opens the product page in the default browser.
func (s *ProductActionService) OpenProduct(_ context.Context, product domain.Product) error {
	url, err := productURL(product)
	if err != nil {
		return err
	}
	return s.open(url)
}

// CopyURL copies the product page URL to the system clipboard.
func (s *ProductActionService) CopyURL(_ context.Context, product domain.Product) error {
	url, err := productURL(product)
	if err != nil {
		return err
	}
	return s.copy(url)
}

// productURL returns the enriched URL, deriving it when the product was
// never enriched.
func productURL(product domain.Product) (string, error) {
	if product == nil {
		return "", fmt.Errorf("%w: product is nil", domain.ErrInvalidInput)
	}
	if url := product.ProductURL(); url != "" {
		return url, nil
	}
	if url, ok := BuildProductURL(product); ok {
		return url, nil
	}
	return "", fmt.Errorf("%w: product has no page URL", domain.ErrNotFound)
}

// openURL opens a URL in the default browser.
func openURL(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case osDarwin:
		cmd = exec.Command("open", url)
	case osLinux:
		cmd = exec.Command("xdg-open", url)
	case osWindows:
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}

// copyToClipboard copies text to the system clipboard using OS-specific commands.
func copyToClipboard(text string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case osDarwin:
		cmd = exec.Command("pbcopy")
	case osLinux:
		// Try xclip first, fall back to xsel
		if _, err := exec.LookPath("xclip"); err == nil {
			cmd = exec.Command("xclip", "-selection", "clipboard")
		} else if _, err := exec.LookPath("xsel"); err == nil {
			cmd = exec.Command("xsel", "--clipboard", "--input")
		} else {
			return fmt.Errorf("no clipboard utility found (install xclip or xsel)")
		}
	case osWindows:
		cmd = exec.Command("cmd", "/c", "clip")
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}
