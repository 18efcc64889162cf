package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	pkgErrors "executive-assistant/pkg/errors"
)

func TestAsHTTPError(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", pkgErrors.NewHTTPError(http.StatusConflict, "conflict"))

	he, ok := pkgErrors.AsHTTPError(wrapped)
	if !ok || he.StatusCode != http.StatusConflict || he.Error() != "conflict" {
		t.Errorf("unexpected result %+v, %v", he, ok)
	}

	if _, ok := pkgErrors.AsHTTPError(fmt.Errorf("plain")); ok {
		t.Errorf("plain error reported as HTTPError")
	}
}
