// Package calc is the boundary between the carry core and its front ends.
// It turns a raw request into a typed result; failures are reported in the
// result and never returned as Go errors or panics.
package calc

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/slayer-carry/internal/breakdown"
	"github.com/vovakirdan/slayer-carry/internal/carry"
	"github.com/vovakirdan/slayer-carry/internal/slayer"
)

// Request is one calculation as entered by the user.
type Request struct {
	SlayerType   string
	CurrentLevel int
	TargetLevel  int
}

// Result is either a priced plan (OK) or a failure with its kind.
type Result struct {
	OK bool

	SlayerID   string
	SlayerName string
	XPNeeded   int
	TotalXP    int
	TotalCost  int
	Breakdown  []breakdown.Line
	Summary    breakdown.Summary

	ErrorKind string
	Message   string
}

// Calculator runs requests against a catalog.
type Calculator struct {
	catalog *slayer.Catalog
	logger  *log.Logger
}

// New creates a calculator. A nil logger discards output.
func New(catalog *slayer.Catalog, logger *log.Logger) *Calculator {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Calculator{catalog: catalog, logger: logger}
}

// Catalog returns the catalog the calculator uses.
func (c *Calculator) Catalog() *slayer.Catalog {
	return c.catalog
}

// Calculate prices the cheapest carry plan for a request.
func (c *Calculator) Calculate(req Request) Result {
	c.logger.Debug("calculating",
		"slayer", req.SlayerType,
		"current", req.CurrentLevel,
		"target", req.TargetLevel,
	)

	st, err := c.catalog.Lookup(req.SlayerType)
	if err != nil {
		return c.fail(req, err)
	}

	deficit, err := st.Levels.Deficit(req.CurrentLevel, req.TargetLevel)
	if err != nil {
		return c.fail(req, err)
	}

	plan, err := carry.OptimizeType(deficit, st)
	if err != nil {
		return c.fail(req, err)
	}

	summary := breakdown.Format(plan)
	c.logger.Debug("plan found",
		"slayer", st.ID,
		"xp_needed", deficit,
		"xp_gained", plan.TotalXP,
		"runs", plan.Runs(),
		"cost", plan.TotalCost,
	)

	return Result{
		OK:         true,
		SlayerID:   st.ID,
		SlayerName: st.Name,
		XPNeeded:   deficit,
		TotalXP:    summary.TotalXP,
		TotalCost:  summary.TotalCost,
		Breakdown:  summary.Lines,
		Summary:    summary,
	}
}

// Failure converts an error into a failed result.
func Failure(err error) Result {
	return Result{
		ErrorKind: slayer.Kind(err),
		Message:   message(err),
	}
}

func (c *Calculator) fail(req Request, err error) Result {
	res := Failure(err)
	c.logger.Warn("calculation failed",
		"slayer", req.SlayerType,
		"current", req.CurrentLevel,
		"target", req.TargetLevel,
		"kind", res.ErrorKind,
		"error", err,
	)
	return res
}

// message gives a user-facing explanation for a calculation error.
func message(err error) string {
	switch slayer.Kind(err) {
	case slayer.KindInvalidRange:
		return "Target level must be higher than current level!"
	case slayer.KindOutOfRange:
		return "Level is outside the supported range: " + err.Error()
	case slayer.KindInvalidDeficit:
		return "Invalid level range!"
	case slayer.KindUnknownSlayerType:
		return "Unknown slayer type: " + err.Error()
	case slayer.KindNoViableTier:
		return "No viable carry combination found!"
	default:
		return err.Error()
	}
}

// ParseLevel reads a level typed by the user. Anything that is not a whole
// number is reported as out of range.
func ParseLevel(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("level %q is not a whole number: %w", s, slayer.ErrOutOfRange)
	}
	return n, nil
}

// ParseRequest builds a request from raw text fields.
func ParseRequest(slayerType, current, target string) (Request, error) {
	cur, err := ParseLevel(current)
	if err != nil {
		return Request{}, fmt.Errorf("current %w", err)
	}
	tgt, err := ParseLevel(target)
	if err != nil {
		return Request{}, fmt.Errorf("target %w", err)
	}
	return Request{SlayerType: slayerType, CurrentLevel: cur, TargetLevel: tgt}, nil
}
