package extract

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/studymind/studymind/internal/pkg/logger"
)

var slidePartPattern = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// extractSlides flattens the text of every slide part of a ppt/pptx archive
// in document order, joining slides with blank lines. A slide whose XML does
// not parse is logged and skipped; one bad slide never fails the extraction.
// Only a corrupt archive is a hard error.
func extractSlides(filePath string) (string, error) {
	archive, err := zip.OpenReader(filePath)
	if err != nil {
		return "", fmt.Errorf("open slides archive: %w", err)
	}
	defer archive.Close()

	type slidePart struct {
		number int
		file   *zip.File
	}
	var parts []slidePart
	for _, f := range archive.File {
		m := slidePartPattern.FindStringSubmatch(f.Name)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		parts = append(parts, slidePart{number: n, file: f})
	}
	sort.Slice(parts, func(i, j int) bool { return parts[i].number < parts[j].number })

	var sb strings.Builder
	for _, part := range parts {
		text, err := flattenSlideXML(part.file)
		if err != nil {
			logger.Warn().Err(err).Str("slide", part.file.Name).Msg("Skipping unparseable slide")
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n\n")
	}
	return sb.String(), nil
}

// flattenSlideXML joins every character data leaf of a slide part with
// spaces, mirroring a full flatten of the parsed XML tree.
func flattenSlideXML(f *zip.File) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	decoder := xml.NewDecoder(rc)
	var values []string
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if cd, ok := tok.(xml.CharData); ok {
			if v := strings.TrimSpace(string(cd)); v != "" {
				values = append(values, v)
			}
		}
	}
	return strings.Join(values, " "), nil
}
