package services

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractBytes_Text(t *testing.T) {
	extractor := NewTextExtractor()

	for _, name := range []string{"resume.txt", "RESUME.MD", "resume"} {
		content, err := extractor.ExtractBytes(name, []byte("  Jane Doe  \n\n\n\n  Go engineer\nBerlin \n"))
		require.NoError(t, err, name)
		assert.Equal(t, "Jane Doe\n\nGo engineer\nBerlin", content.Text)
		assert.Equal(t, FileTypeText, content.FileType)
		assert.Zero(t, content.PageCount)
	}
}

func TestExtractBytes_Rejections(t *testing.T) {
	extractor := NewTextExtractor()

	_, err := extractor.ExtractBytes("resume.odt", []byte("PK"))
	assert.ErrorIs(t, err, ErrUnsupportedFileType)

	_, err = extractor.ExtractBytes("resume.docx", []byte("PK"))
	assert.Error(t, err)

	_, err = extractor.ExtractBytes("resume.txt", []byte{0xff, 0xfe, 0xfd})
	assert.Error(t, err)

	_, err = extractor.ExtractBytes("resume.txt", []byte(" \n\n "))
	assert.Error(t, err)

	_, err = extractor.ExtractBytes("resume.pdf", []byte("not a pdf"))
	assert.Error(t, err)
}

func TestExtractFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "job.txt")
	require.NoError(t, os.WriteFile(path, []byte("Backend role\nGo, SQL"), 0o600))

	content, err := NewTextExtractor().ExtractFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Backend role\nGo, SQL", content.Text)

	_, err = NewTextExtractor().ExtractFile(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "a\nb\n\nc", CleanText("\n\n  a \n b\n\n\n\n c  \n\n"))
	assert.Equal(t, "", CleanText(" \n \n"))
}

func buildDocx(t *testing.T, body string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	files := [][2]string{
		{"word/document.xml", `<?xml version="1.0" encoding="UTF-8"?><w:document><w:body>` + body + `</w:body></w:document>`},
		{"word/_rels/document.xml.rels", `<?xml version="1.0" encoding="UTF-8"?><Relationships></Relationships>`},
	}
	for _, f := range files {
		w, err := zw.Create(f[0])
		require.NoError(t, err)
		_, err = w.Write([]byte(f[1]))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestExtractBytes_Docx(t *testing.T) {
	data := buildDocx(t,
		`<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>`+
			`<w:p><w:r><w:t>Go &amp; Kubernetes</w:t><w:tab/><w:t>Berlin</w:t></w:r></w:p>`)

	content, err := NewTextExtractor().ExtractBytes("cv.docx", data)
	require.NoError(t, err)
	assert.Equal(t, FileTypeDOCX, content.FileType)
	assert.Equal(t, "Jane Doe\nGo & Kubernetes Berlin", content.Text)
}
