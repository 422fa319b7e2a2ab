package http

import (
	"strings"

	"patient-intake-router/internal/routing"
)

// --- Request DTOs ---

type routeReq struct {
	// Text is required as a key but may be empty.
	Text *string `json:"text" binding:"required"`
}

func (r routeReq) validate() error { return nil }

func (r routeReq) text() string {
	return *r.Text
}

// ---

type departmentReq struct {
	ID string `uri:"id" binding:"required"`
}

func (r departmentReq) validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return errEmptyParam
	}
	return nil
}

// ---

type prerequisitesReq struct {
	Intent string `uri:"intent" binding:"required"`
}

func (r prerequisitesReq) validate() error { return nil }

// --- Response DTOs ---

type departmentResp struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Extra       map[string]any `json:"extra,omitempty"`
}

func newDepartmentResp(d routing.Department) departmentResp {
	return departmentResp{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Extra:       d.Extra,
	}
}

type prerequisiteResp struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

type prerequisitesResp struct {
	Intent   string             `json:"intent"`
	Required []prerequisiteResp `json:"required"`
	Optional []prerequisiteResp `json:"optional"`
}

func (h *handler) newPrerequisitesResp(intent string, set routing.PrerequisiteSet) prerequisitesResp {
	return prerequisitesResp{
		Intent:   intent,
		Required: h.describePrerequisites(set.Required),
		Optional: h.describePrerequisites(set.Optional),
	}
}

// describePrerequisites resolves ids against the configuration; unknown ids keep only the id.
func (h *handler) describePrerequisites(ids []string) []prerequisiteResp {
	out := make([]prerequisiteResp, 0, len(ids))
	for _, id := range ids {
		item := prerequisiteResp{ID: id}
		if p, ok := h.cfg.Prerequisite(id); ok {
			item.Name = p.Name
			item.Description = p.Description
		}
		out = append(out, item)
	}
	return out
}
