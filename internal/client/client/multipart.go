package client

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/inkwell/internal/filex"
)

type formField struct {
	name, value string
}

type formFile struct {
	name, path string
}

// multipartForm collects fields in order; repeated names are kept.
type multipartForm struct {
	fields []formField
	files  []formFile
}

func newMultipartForm() *multipartForm {
	return &multipartForm{}
}

func (f *multipartForm) add(name, value string) {
	f.fields = append(f.fields, formField{name: name, value: value})
}

func (f *multipartForm) attach(name, path string) {
	f.files = append(f.files, formFile{name: name, path: path})
}

func (f *multipartForm) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, fld := range f.fields {
		if err := w.WriteField(fld.name, fld.value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", fld.name, err)
		}
	}
	for _, ff := range f.files {
		if err := writeFile(w, ff); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

func writeFile(w *multipart.Writer, ff formFile) error {
	data, err := os.ReadFile(ff.path)
	if err != nil {
		return fmt.Errorf("read %s: %w", ff.path, err)
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, ff.name, filepath.Base(ff.path)))
	h.Set("Content-Type", filex.ContentType(ff.path, data))

	part, err := w.CreatePart(h)
	if err != nil {
		return fmt.Errorf("create part %s: %w", ff.name, err)
	}
	if _, err := part.Write(data); err != nil {
		return fmt.Errorf("write part %s: %w", ff.name, err)
	}
	return nil
}
