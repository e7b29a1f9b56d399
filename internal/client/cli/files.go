package cli

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/filevault/internal/client/client"
	"github.com/dmitrijs2005/filevault/internal/server/models"
)

// imageExtensions mark uploads that get the image type and thumbnails.
var imageExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
}

func entryTypeForFile(name string) string {
	if imageExtensions[strings.ToLower(filepath.Ext(name))] {
		return models.TypeImage
	}
	return models.TypeFile
}

func (a *App) List(ctx context.Context) error {

	parent, err := GetSimpleText(a.reader, "Parent folder id (empty for root)", a.out)
	if err != nil {
		return err
	}
	pageText, err := GetSimpleText(a.reader, "Page (empty for first)", a.out)
	if err != nil {
		return err
	}
	page, _ := strconv.Atoi(pageText)

	entries, err := a.api.ListFiles(ctx, parent, page)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	for _, e := range entries {
		visibility := "private"
		if e.IsPublic {
			visibility = "public"
		}
		fmt.Fprintf(a.out, "%s  %-6s  %-7s  %s\n", e.ID, e.Type, visibility, e.Name)
	}
	fmt.Fprintf(a.out, "%d entries\n", len(entries))
	return nil
}

func (a *App) Mkdir(ctx context.Context) error {

	name, err := GetSimpleText(a.reader, "Folder name", a.out)
	if err != nil {
		return err
	}
	parent, err := GetSimpleText(a.reader, "Parent folder id (empty for root)", a.out)
	if err != nil {
		return err
	}

	folder, err := a.api.Upload(ctx, &client.UploadRequest{
		Name:     name,
		Type:     models.TypeFolder,
		ParentID: parent,
	})
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Created folder %s (id %s)\n", folder.Name, folder.ID)
	return nil
}

func (a *App) Upload(ctx context.Context) error {

	path, err := GetSimpleText(a.reader, "Path of the file to upload", a.out)
	if err != nil {
		return err
	}
	parent, err := GetSimpleText(a.reader, "Parent folder id (empty for root)", a.out)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	name := filepath.Base(path)
	file, err := a.api.Upload(ctx, &client.UploadRequest{
		Name:     name,
		Type:     entryTypeForFile(name),
		ParentID: parent,
		Data:     base64.StdEncoding.EncodeToString(data),
	})
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Uploaded %s (id %s, type %s)\n", file.Name, file.ID, file.Type)
	return nil
}

func (a *App) Download(ctx context.Context) error {

	id, err := GetSimpleText(a.reader, "File id", a.out)
	if err != nil {
		return err
	}
	sizeText, err := GetSimpleText(a.reader, "Thumbnail width 500/250/100 (empty for original)", a.out)
	if err != nil {
		return err
	}
	size, _ := strconv.Atoi(sizeText)

	dest, err := GetSimpleText(a.reader, "Destination path", a.out)
	if err != nil {
		return err
	}

	data, contentType, err := a.api.Download(ctx, id, size)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	if err := os.WriteFile(dest, data, 0o600); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Saved %d bytes (%s) to %s\n", len(data), contentType, dest)
	return nil
}

func (a *App) Publish(ctx context.Context) error {
	return a.setVisibility(ctx, true)
}

func (a *App) Unpublish(ctx context.Context) error {
	return a.setVisibility(ctx, false)
}

func (a *App) setVisibility(ctx context.Context, public bool) error {

	id, err := GetSimpleText(a.reader, "File id", a.out)
	if err != nil {
		return err
	}

	var file *models.File
	if public {
		file, err = a.api.Publish(ctx, id)
	} else {
		file, err = a.api.Unpublish(ctx, id)
	}
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintf(a.out, "%s isPublic=%v\n", file.Name, file.IsPublic)
	return nil
}
