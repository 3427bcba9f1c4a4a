// Copyright 2026 Olulo MX
// SPDX-License-Identifier: AGPL-3.0

package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"
)

const identityHeader = "X-Authenticated-User-Id"

func baseURL() string {
	if url := os.Getenv("HTTP_BASE_URL"); url != "" {
		return url
	}
	if testEnv != nil {
		return testEnv.BaseURL
	}
	return defaultBaseURL
}

// do sends a request as the given user with a session cookie, without
// following redirects so the 303 from scope selection is observable.
func do(ctx context.Context, t *testing.T, method, path, userID, sessionID string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, baseURL()+path, reader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	if userID != "" {
		req.Header.Set(identityHeader, userID)
	}
	if sessionID != "" {
		req.AddCookie(&http.Cookie{Name: "sid", Value: sessionID})
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{
		Timeout: 10 * time.Second,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func TestScopeSelectionLifecycle(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sessionID := fmt.Sprintf("e2e-session-%d", time.Now().UnixNano())

	t.Run("chooser lists memberships by kind", func(t *testing.T) {
		resp := do(ctx, t, http.MethodGet, "/scopes", "user-x", sessionID, nil)
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}

		var view struct {
			Groups []struct {
				Kind        string `json:"kind"`
				CanCreate   bool   `json:"can_create"`
				Memberships []struct {
					TenantID   int64  `json:"tenant_id"`
					TenantName string `json:"tenant_name"`
					Role       string `json:"role"`
				} `json:"memberships"`
			} `json:"groups"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&view); err != nil {
			t.Fatalf("failed to decode chooser: %v", err)
		}

		if len(view.Groups) != 3 {
			t.Fatalf("expected three groups, got %d", len(view.Groups))
		}
		for _, g := range view.Groups {
			switch g.Kind {
			case "organization":
				if !g.CanCreate || len(g.Memberships) != 1 || g.Memberships[0].Role != "manager" {
					t.Errorf("unexpected organization group: %+v", g)
				}
			case "brand":
				if g.CanCreate || len(g.Memberships) != 0 {
					t.Errorf("unexpected brand group: %+v", g)
				}
			case "store":
				if !g.CanCreate || len(g.Memberships) != 1 || g.Memberships[0].Role != "owner" {
					t.Errorf("unexpected store group: %+v", g)
				}
			}
		}
	})

	t.Run("selecting a held organization redirects", func(t *testing.T) {
		resp := do(ctx, t, http.MethodPost, "/scopes/select", "user-x", sessionID,
			map[string]any{"tenant_type": "organization", "tenant_id": 1})
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusSeeOther {
			t.Fatalf("expected 303, got %d", resp.StatusCode)
		}
		if loc := resp.Header.Get("Location"); loc != "/organization/1" {
			t.Errorf("expected redirect to /organization/1, got %s", loc)
		}
	})

	t.Run("selecting a foreign store is denied", func(t *testing.T) {
		resp := do(ctx, t, http.MethodPost, "/scopes/select", "user-x", sessionID,
			map[string]any{"tenant_type": "store", "tenant_id": 9})
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusForbidden {
			t.Errorf("expected 403, got %d", resp.StatusCode)
		}
	})

	t.Run("selecting a brand without membership is denied", func(t *testing.T) {
		resp := do(ctx, t, http.MethodPost, "/scopes/select", "user-x", sessionID,
			map[string]any{"tenant_type": "brand", "tenant_id": 1})
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusForbidden {
			t.Errorf("expected 403, got %d", resp.StatusCode)
		}
	})
}

func TestTenantCreationLifecycle(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sessionID := fmt.Sprintf("e2e-create-%d", time.Now().UnixNano())
	name := fmt.Sprintf("e2e-org-%d", time.Now().UnixNano())

	var orgID int64
	t.Run("self-service organization", func(t *testing.T) {
		resp := do(ctx, t, http.MethodPost, "/organizations", "user-x", sessionID,
			map[string]any{"name": name})
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("expected 201, got %d", resp.StatusCode)
		}

		var created struct {
			ID int64 `json:"ID"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
			t.Fatalf("failed to decode organization: %v", err)
		}
		if created.ID == 0 {
			t.Fatal("expected created organization id")
		}
		orgID = created.ID
	})

	t.Run("creator can select the new organization", func(t *testing.T) {
		resp := do(ctx, t, http.MethodPost, "/scopes/select", "user-x", sessionID,
			map[string]any{"tenant_type": "organization", "tenant_id": orgID})
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusSeeOther {
			t.Fatalf("expected 303, got %d", resp.StatusCode)
		}
		if loc := resp.Header.Get("Location"); loc != fmt.Sprintf("/organization/%d", orgID) {
			t.Errorf("unexpected redirect location: %s", loc)
		}
	})
}

func TestCustomerCannotReachPanel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resp := do(ctx, t, http.MethodGet, "/scopes", "customer-1", "irrelevant", nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected opaque 404 for end customers, got %d", resp.StatusCode)
	}
}
