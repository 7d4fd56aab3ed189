package transport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"net/url"
)

type (
	bodyKind int

	// Body is a closed union of the request body representations the backend
	// accepts. Build one with JSON, Form, Multipart, Blob or Stream; a nil
	// *Body means no body at all. Exactly one representation is ever sent.
	Body struct {
		kind        bodyKind
		json        any
		form        url.Values
		multipart   *MultipartPayload
		reader      io.Reader
		contentType string
	}

	// MultipartPayload describes a multipart/form-data body with at most one
	// file part. The boundary content type is produced by the multipart
	// writer and is never overridden by default headers.
	MultipartPayload struct {
		Fields          map[string]string
		FileField       string
		FileName        string
		File            io.Reader
		FileContentType string
	}
)

const (
	bodyJSON bodyKind = iota + 1
	bodyForm
	bodyMultipart
	bodyBlob
	bodyStream
)

// JSON serializes v with encoding/json and sends it with the JSON content
// type, unless the caller overrode Content-Type explicitly.
func JSON(v any) *Body {
	return &Body{kind: bodyJSON, json: v}
}

func Form(v url.Values) *Body {
	return &Body{kind: bodyForm, form: v}
}

func Multipart(p *MultipartPayload) *Body {
	return &Body{kind: bodyMultipart, multipart: p}
}

func Blob(contentType string, r io.Reader) *Body {
	return &Body{kind: bodyBlob, reader: r, contentType: contentType}
}

func Stream(r io.Reader) *Body {
	return &Body{kind: bodyStream, reader: r}
}

// encode materializes the body into a reader plus the content type the body
// itself mandates. An empty content type means the body imposes none.
func (b *Body) encode() (io.Reader, string, error) {
	switch b.kind {
	case bodyJSON:
		payload, err := json.Marshal(b.json)
		if err != nil {
			return nil, "", fmt.Errorf("cannot serialize the request body: %w", err)
		}
		return bytes.NewReader(payload), "application/json; charset=UTF-8", nil
	case bodyForm:
		return bytes.NewReader([]byte(b.form.Encode())), "application/x-www-form-urlencoded; charset=UTF-8", nil
	case bodyMultipart:
		return b.multipart.encode()
	case bodyBlob:
		return b.reader, b.contentType, nil
	case bodyStream:
		return b.reader, "", nil
	}
	return nil, "", fmt.Errorf("unknown body kind %d", b.kind)
}

func (b *Body) isJSON() bool {
	return b != nil && b.kind == bodyJSON
}

func (p *MultipartPayload) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for k, v := range p.Fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, "", fmt.Errorf("cannot write the form field %q: %w", k, err)
		}
	}

	if p.File != nil {
		part, err := p.createFilePart(w)
		if err != nil {
			return nil, "", fmt.Errorf("cannot create the file part: %w", err)
		}
		if _, err := io.Copy(part, p.File); err != nil {
			return nil, "", fmt.Errorf("cannot copy the file content: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("cannot finalize the multipart body: %w", err)
	}

	return &buf, w.FormDataContentType(), nil
}

func (p *MultipartPayload) createFilePart(w *multipart.Writer) (io.Writer, error) {
	if p.FileContentType == "" {
		return w.CreateFormFile(p.FileField, p.FileName)
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, p.FileField, p.FileName))
	h.Set("Content-Type", p.FileContentType)
	return w.CreatePart(h)
}
