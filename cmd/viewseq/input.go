package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/tidwall/gjson"
)

const (
	MAX_INPUT_SIZE = 1 << 26
)

var (
	ErrNoInput        = errors.New("no input: use -seq or -input")
	ErrBothInputs     = errors.New("-seq and -input are mutually exclusive")
	ErrNotAnArray     = errors.New("input is not an array")
	ErrInputTooLarge  = errors.New("input is too large")
	ErrUnknownFormat  = errors.New("unknown input format")
	ErrPathOnSequence = errors.New("-path can only be used with -input")
)

// inputSpec describes where the elements of the sequence come from.
type inputSpec struct {
	seq  string //comma-separated list
	file string
	path string //gjson path of the array in the input document
}

// readElements returns the elements described by spec as numbers, the caller converts them to the element
// type of the source.
func readElements(spec inputSpec) ([]float64, error) {
	switch {
	case spec.seq != "" && spec.file != "":
		return nil, ErrBothInputs
	case spec.seq != "":
		if spec.path != "" {
			return nil, ErrPathOnSequence
		}
		return parseSequence(spec.seq)
	case spec.file != "":
		return readInputFile(spec.file, spec.path)
	default:
		return nil, ErrNoInput
	}
}

func parseSequence(s string) ([]float64, error) {
	elements := []float64{}
	if strings.TrimSpace(s) == "" {
		return elements, nil
	}

	for i, part := range strings.Split(s, ",") {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid element at index %d: %w", i, err)
		}
		elements = append(elements, f)
	}
	return elements, nil
}

// readInputFile reads a JSON or YAML document, optionally compressed with gzip (.gz) or zstd (.zst).
func readInputFile(path string, arrayPath string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	name := path

	switch filepath.Ext(name) {
	case ".gz":
		gzipReader, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress %s: %w", path, err)
		}
		defer gzipReader.Close()
		r = gzipReader
		name = strings.TrimSuffix(name, ".gz")
	case ".zst":
		decoder, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress %s: %w", path, err)
		}
		defer decoder.Close()
		r = decoder
		name = strings.TrimSuffix(name, ".zst")
	}

	content, err := io.ReadAll(io.LimitReader(r, MAX_INPUT_SIZE+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(content) > MAX_INPUT_SIZE {
		return nil, ErrInputTooLarge
	}

	switch filepath.Ext(name) {
	case ".json":
	case ".yaml", ".yml":
		content, err = yaml.YAMLToJSON(content)
		if err != nil {
			return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	return decodeArray(content, arrayPath)
}

func decodeArray(jsonDoc []byte, arrayPath string) ([]float64, error) {
	if arrayPath != "" {
		result := gjson.GetBytes(jsonDoc, arrayPath)
		if !result.Exists() {
			return nil, fmt.Errorf("nothing found at path %q", arrayPath)
		}
		if !result.IsArray() {
			return nil, fmt.Errorf("%w: %s", ErrNotAnArray, arrayPath)
		}
		jsonDoc = []byte(result.Raw)
	}

	jsonDoc = bytes.TrimSpace(jsonDoc)
	if len(jsonDoc) == 0 || jsonDoc[0] != '[' {
		return nil, ErrNotAnArray
	}

	elements := []float64{}
	if err := json.Unmarshal(jsonDoc, &elements); err != nil {
		return nil, fmt.Errorf("invalid elements: %w", err)
	}
	return elements, nil
}
