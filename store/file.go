package store

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strings"

	"github.com/stsysd/eventgrapher/model"
)

// ReadLines は入力ファイルを行単位で読み込みます。
// ファイルがない場合は model.ErrInputNotFound、読めない場合は model.ErrInputUnreadable をラップして返します。
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", model.ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", model.ErrInputUnreadable, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	// 1行の長さに上限を設けない
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	for scanner.Scan() {
		// CRLFの入力にも対応
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInputUnreadable, err)
	}
	return lines, nil
}

// Load は入力ファイルを読み込み、Collectionを構築します。
func Load(path string, p LineParser) (*Collection, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return nil, err
	}
	return Build(lines, p), nil
}
