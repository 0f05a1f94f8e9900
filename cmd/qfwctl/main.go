// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command qfwctl reads a weight matrix from stdin, runs the All-Pairs
// Shortest Paths engine over it, and prints the result. It exists to
// exercise apsp.Engine by hand; it is not the benchmark driver or
// correctness harness spec.md excludes from the core — those stay external
// collaborators this module never implements.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/blockwarshall/qfw/apsp"
	"github.com/blockwarshall/qfw/simd"
)

func main() {
	symmetric := flag.Bool("symmetric", false, "treat the input matrix as symmetric")
	unroll := flag.Int("unroll", 3, "register-blocking strategy, 0-3")
	naive := flag.Bool("naive", false, "use the unoptimized O(n^3) reference instead of the blocked kernel")
	flag.Parse()

	n, weights, err := readMatrix(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, "qfwctl:", err)
		os.Exit(1)
	}

	out := make([]int64, n*n)
	if *naive {
		engine := apsp.NaiveEngine[int64]{}
		fmt.Fprintln(os.Stderr, "strategy:", engine.Describe())
		engine.Solve(n, weights, out, *symmetric)
	} else {
		engine := apsp.NewEngine[int64](simd.ScalableTag[int64]{}, *unroll)
		fmt.Fprintln(os.Stderr, "strategy:", engine.Describe())
		engine.Solve(n, weights, out, *symmetric)
	}

	writeMatrix(os.Stdout, n, out)
}

// readMatrix parses "n" on the first line followed by n lines of n
// whitespace-separated integers. INF may be spelled literally "INF".
func readMatrix(r *os.File) (int, []int64, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !scanner.Scan() {
		return 0, nil, fmt.Errorf("empty input, expected n on the first line")
	}
	n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return 0, nil, fmt.Errorf("parsing n: %w", err)
	}
	if n < 0 || n >= 65536 {
		return 0, nil, fmt.Errorf("n=%d out of range [0, 65536)", n)
	}

	weights := make([]int64, n*n)
	inf := apsp.Inf[int64]()
	for i := 0; i < n; i++ {
		if !scanner.Scan() {
			return 0, nil, fmt.Errorf("row %d: unexpected end of input", i)
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) != n {
			return 0, nil, fmt.Errorf("row %d: got %d fields, want %d", i, len(fields), n)
		}
		for j, field := range fields {
			if field == "INF" {
				weights[i*n+j] = inf
				continue
			}
			v, err := strconv.ParseInt(field, 10, 64)
			if err != nil {
				return 0, nil, fmt.Errorf("row %d col %d: %w", i, j, err)
			}
			weights[i*n+j] = v
		}
	}
	return n, weights, nil
}

func writeMatrix(w *os.File, n int, weights []int64) {
	buf := bufio.NewWriter(w)
	defer buf.Flush()
	inf := apsp.Inf[int64]()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j > 0 {
				buf.WriteByte(' ')
			}
			if weights[i*n+j] == inf {
				buf.WriteString("INF")
			} else {
				fmt.Fprintf(buf, "%d", weights[i*n+j])
			}
		}
		buf.WriteByte('\n')
	}
}
