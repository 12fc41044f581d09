// --------------------------------------------------------------------------------
// Author: Giovanna Cardenas
//
// This file is part of a software project developed by Giovanna Cardenas.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// For more information about the MIT License, please visit:
// https://opensource.org/licenses/MIT
//
// Acknowledgment appreciated but not required.
// --------------------------------------------------------------------------------

package corpus

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LoadPostgres reads documents and labels from a Postgres table with
// `content` and `label` columns, ordered by `id` so that repeated loads
// produce the identical corpus.
func LoadPostgres(ctx context.Context, pool *pgxpool.Pool, table string) (*Corpus, error) {
	query := fmt.Sprintf("SELECT content, label FROM %s ORDER BY id", pgx.Identifier{table}.Sanitize())
	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying corpus table %s: %w", table, err)
	}
	defer rows.Close()

	c := &Corpus{}
	for rows.Next() {
		var text string
		var label int
		if err := rows.Scan(&text, &label); err != nil {
			return nil, fmt.Errorf("scanning corpus row: %w", err)
		}
		c.Add(text, label)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading corpus table %s: %w", table, err)
	}
	return c, nil
}
