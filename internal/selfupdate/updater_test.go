package selfupdate

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetNameFor(t *testing.T) {
	tests := []struct {
		goos, goarch string
		want         string
		wantErr      bool
	}{
		{"darwin", "arm64", "levelcheck_Darwin_all.tar.gz", false},
		{"darwin", "amd64", "levelcheck_Darwin_all.tar.gz", false},
		{"linux", "amd64", "levelcheck_Linux_x86_64.tar.gz", false},
		{"linux", "arm64", "levelcheck_Linux_arm64.tar.gz", false},
		{"linux", "386", "levelcheck_Linux_i386.tar.gz", false},
		{"windows", "amd64", "levelcheck_Windows_x86_64.zip", false},
		{"linux", "mips", "", true},
		{"plan9", "amd64", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.goarch, func(t *testing.T) {
			got, err := assetNameFor(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseChecksums(t *testing.T) {
	data := []byte(`abc123  levelcheck_Linux_x86_64.tar.gz
def456  levelcheck_Darwin_all.tar.gz

malformed line with too many fields here
`)
	checksums := parseChecksums(data)
	assert.Len(t, checksums, 2)
	assert.Equal(t, "abc123", checksums["levelcheck_Linux_x86_64.tar.gz"])
	assert.Equal(t, "def456", checksums["levelcheck_Darwin_all.tar.gz"])
}

func TestVerifyChecksum(t *testing.T) {
	data := []byte("hello update")
	h := sha256.Sum256(data)
	good := hex.EncodeToString(h[:])

	assert.NoError(t, verifyChecksum(data, good))

	err := verifyChecksum(data, "not-the-hash")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrChecksum)
}

func buildTarGz(t *testing.T, name string, contents []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name:     name,
		Mode:     0755,
		Size:     int64(len(contents)),
		Typeflag: tar.TypeReg,
	}))
	_, err := tw.Write(contents)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

func TestExtractBinary(t *testing.T) {
	contents := []byte("fake binary contents")
	archive := buildTarGz(t, "levelcheck", contents)

	got, err := extractBinary(archive, "levelcheck_Linux_x86_64.tar.gz")
	require.NoError(t, err)
	assert.Equal(t, contents, got)
}

func TestExtractBinaryMissing(t *testing.T) {
	archive := buildTarGz(t, "README.md", []byte("not a binary"))

	_, err := extractBinary(archive, "levelcheck_Linux_x86_64.tar.gz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestUpdateDevBuild(t *testing.T) {
	c := NewChecker()
	err := c.Update(t.Context(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
	assert.ErrorIs(t, err, ErrDevBuild)
}

func TestUpdateAlreadyLatest(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"tag_name": "v1.2.0"}`)
	}))
	defer api.Close()

	c := NewChecker(WithAPIBaseURL(api.URL))
	err := c.Update(t.Context(), &UpdateInput{CurrentVersion: "1.2.0"}, func(UpdateProgress) {})
	assert.ErrorIs(t, err, ErrAlreadyLatest)
}

func TestUpdateEndToEnd(t *testing.T) {
	if runtime.GOOS != "linux" && runtime.GOOS != "darwin" {
		t.Skip("update flow test targets tar.gz platforms")
	}

	newBinary := []byte("#!/bin/true new version")
	asset, err := assetNameFor(runtime.GOOS, runtime.GOARCH)
	require.NoError(t, err)
	archive := buildTarGz(t, "levelcheck", newBinary)
	archiveHash := sha256.Sum256(archive)

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"tag_name": "v9.9.9"}`)
	}))
	defer api.Close()

	dl := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch filepath.Base(r.URL.Path) {
		case asset:
			_, _ = w.Write(archive)
		case "checksums.txt":
			fmt.Fprintf(w, "%s  %s\n", hex.EncodeToString(archiveHash[:]), asset)
		default:
			http.NotFound(w, r)
		}
	}))
	defer dl.Close()

	target := filepath.Join(t.TempDir(), "levelcheck")
	require.NoError(t, os.WriteFile(target, []byte("old version"), 0755))

	c := NewChecker(
		WithAPIBaseURL(api.URL),
		WithDownloadBaseURL(dl.URL),
		WithExecPath(func() (string, error) { return target, nil }),
	)

	var stages []string
	err = c.Update(t.Context(), &UpdateInput{CurrentVersion: "1.0.0"}, func(p UpdateProgress) {
		stages = append(stages, p.Stage)
	})
	require.NoError(t, err)

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, newBinary, got)
	assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)
}
