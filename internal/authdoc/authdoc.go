// Package authdoc generates a single markdown reference documenting every
// authentication-related file in the web application, with per-page notes on
// how authentication is used.
package authdoc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harrison/repoaudit/internal/filelock"
)

// PageDetail describes how one page of the application uses authentication.
type PageDetail struct {
	Page    string
	Details string
}

// Generator assembles the authentication documentation.
type Generator struct {
	// Root is the project root the file paths are relative to
	Root string
	// Files are the auth-related source files to inline
	Files []string
	// PageDetails are per-page usage notes, emitted in order
	PageDetails []PageDetail
}

// DefaultFiles is the built-in list of auth-related files, overridable via
// configuration.
func DefaultFiles() []string {
	return []string{
		"src/integrations/supabase/client.ts",
		"src/contexts/AuthContext.tsx",
		"src/providers/AuthProvider.tsx",
		"src/hooks/useAuth.tsx",
		"src/lib/auth/authMethods.ts",
		"src/lib/auth/currentUser.ts",
		"src/lib/auth/userProfile.ts",
		"src/components/RequireAuth.tsx",
		"src/components/AuthButton.tsx",
		"src/pages/Auth.tsx",
		"src/pages/AuthCallback.tsx",
	}
}

// DefaultPageDetails returns the built-in per-page authentication notes.
func DefaultPageDetails() []PageDetail {
	return []PageDetail{
		{"Home Page (/)", "Uses the `useAuth` hook for user and loading state; checks permissions via `user.id` once auth has loaded; renders `AuthButton` in `Navigation` and disables the propose button while auth is loading."},
		{"Auth Page (/auth)", "Uses `useAuth` for user, session, and loading state; redirects authenticated users to the return URL; triggers `signInWithDiscord` for sign-in; shows a loading state while auth resolves."},
		{"Auth Callback Page (/auth/callback)", "Uses `useAuth` to wait for the provider to finish; redirects to the return URL on success and surfaces an error when loading completes with no user."},
		{"Profile Page (/profile)", "Wraps all content in `RequireAuth`; `UserProfileSettings` fetches and updates profile data for the authenticated user."},
		{"Upload Page (/upload)", "Uses `useAuth` for user state; shows a sign-in prompt and disables the form when signed out; re-checks authentication before submitting."},
		{"Admin Page (/admin)", "Wraps all content in `RequireAuth` with `requireAdmin`; access control is handled entirely by the wrapper."},
		{"Video Page (/videos/:id)", "Authentication state is handled by `Navigation` via `AuthButton`; the page itself does not gate content on auth."},
		{"Asset Detail Page (/assets/:id)", "Uses `useAuth` for user and `isAdmin`; passes `isAdmin` into `AssetInfoCard` and `AssetVideoSection`; the video uploader requires a signed-in user."},
	}
}

// Generate assembles the markdown document. onFile, if non-nil, is invoked
// for each source file as it is processed. A file that cannot be read is
// documented with the read error in place of its content, matching the
// best-effort behavior of the other scan utilities.
func (g *Generator) Generate(onFile func(string)) string {
	var b strings.Builder

	b.WriteString("# Authentication Files Documentation\n\n")
	b.WriteString("## Overview\n")
	b.WriteString("This document contains all the authentication-related files from the codebase.\n")
	b.WriteString("Each file is documented with its full content for reference.\n\n")

	b.WriteString("## Page Authentication Usage\n\n")
	for _, pd := range g.PageDetails {
		fmt.Fprintf(&b, "### %s\n\n%s\n\n", pd.Page, pd.Details)
	}

	b.WriteString("## Authentication Files\n\n")
	for _, rel := range g.Files {
		if onFile != nil {
			onFile(rel)
		}
		fmt.Fprintf(&b, "### %s\n\n", rel)
		b.WriteString("```typescript\n")
		content, err := os.ReadFile(filepath.Join(g.Root, filepath.FromSlash(rel)))
		if err != nil {
			fmt.Fprintf(&b, "Error reading file %s: %v\n", rel, err)
		} else {
			b.Write(content)
			if len(content) > 0 && content[len(content)-1] != '\n' {
				b.WriteString("\n")
			}
		}
		b.WriteString("```\n\n")
	}

	return b.String()
}

// Write saves the generated documentation to path under an exclusive lock so
// concurrent runs cannot interleave partial output.
func Write(path, content string) error {
	return filelock.WriteLocked(path, []byte(content), 0644)
}
