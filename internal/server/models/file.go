package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Entry types. TypeImage entries additionally trigger thumbnail jobs.
const (
	TypeFolder = "folder"
	TypeFile   = "file"
	TypeImage  = "image"
)

// ValidType reports whether t is one of the three entry types.
func ValidType(t string) bool {
	return t == TypeFolder || t == TypeFile || t == TypeImage
}

// ParentID identifies the folder an entry lives in. The root sentinel is
// "0" (no parent). Legacy clients send the root as JSON number 0 and folder
// ids as strings; both decode into the same typed value, so the rest of the
// code never deals with the string/number split.
type ParentID string

// RootParent is the sentinel meaning "no parent folder".
const RootParent ParentID = "0"

// IsRoot reports whether p is the root sentinel.
func (p ParentID) IsRoot() bool {
	return p == RootParent || p == ""
}

func (p *ParentID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*p = RootParent
		return nil
	}

	if s[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		if v == "" || v == "0" {
			*p = RootParent
		} else {
			*p = ParentID(v)
		}
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid parentId: %w", err)
	}
	if n.String() == "0" {
		*p = RootParent
		return nil
	}
	*p = ParentID(n.String())
	return nil
}

func (p ParentID) MarshalJSON() ([]byte, error) {
	if p.IsRoot() {
		// the legacy API represents the root parent as the number 0
		return []byte("0"), nil
	}
	return json.Marshal(string(p))
}

// ParseParentID normalizes a query-string parentId value. An empty value is
// the root; anything else is taken verbatim.
func ParseParentID(s string) ParentID {
	if s == "" || s == "0" {
		return RootParent
	}
	if _, err := strconv.Atoi(s); err == nil && strings.TrimLeft(s, "0") == "" {
		return RootParent
	}
	return ParentID(s)
}

// File is a stored entry: a folder, a file, or an image. LocalPath is the
// content object location and is set exactly when Type != folder.
type File struct {
	ID        string   `json:"id"`
	UserID    string   `json:"userId"`
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	IsPublic  bool     `json:"isPublic"`
	ParentID  ParentID `json:"parentId"`
	LocalPath string   `json:"localPath,omitempty"`
}
