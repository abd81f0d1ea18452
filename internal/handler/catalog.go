package handler

import (
    "context"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"
    "go.uber.org/zap"
)

// Counter reports the number of rows in a collection.
type Counter interface {
    Count(ctx context.Context) (int64, error)
}

// NamedCounter pairs a collection name with its counter.
type NamedCounter struct {
    Name    string
    Counter Counter
}

// CatalogHandler exposes catalog statistics.
type CatalogHandler struct {
    Collections []NamedCounter
    Log         *zap.Logger
}

func NewCatalogHandler(collections []NamedCounter, log *zap.Logger) *CatalogHandler {
    return &CatalogHandler{Collections: collections, Log: log}
}

// Summary returns the row count of every catalog collection.
func (h *CatalogHandler) Summary(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    // Any failing count fails the whole summary.
    out := make(map[string]int64, len(h.Collections))
    for _, nc := range h.Collections {
        n, err := nc.Counter.Count(ctx)
        if err != nil {
            h.Log.Error("count collection", zap.String("collection", nc.Name), zap.Error(err))
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
        }
        out[nc.Name] = n
    }
    return c.JSON(http.StatusOK, out)
}
