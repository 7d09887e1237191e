package utils

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// DownloadImage downloads an image from the internet and returns its raw bytes.
func DownloadImage(uri string) ([]byte, error) {
	res, err := http.Get(uri)
	if err != nil {
		return nil, fmt.Errorf("unable to download the file from URI %s: %w", uri, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unable to download the file from URI %s: status %s", uri, res.Status)
	}

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("unable to read the response body: %w", err)
	}

	// SVG documents are sniffed as XML or plain text, not as image/*.
	ctype := http.DetectContentType(data)
	if !strings.Contains(ctype, "image") &&
		!strings.Contains(ctype, "xml") &&
		!strings.Contains(ctype, "text/plain") {
		return nil, fmt.Errorf("the downloaded file is not a supported image type: %s", ctype)
	}
	return data, nil
}

// IsValidUrl tests a string to determine if it is a well-structured url or not.
func IsValidUrl(uri string) bool {
	_, err := url.ParseRequestURI(uri)
	if err != nil {
		return false
	}

	u, err := url.Parse(uri)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}

	return true
}
