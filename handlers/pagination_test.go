// SPDX-License-Identifier: GPL-3.0-only

package handlers

import "testing"

func TestPaginationDetails(t *testing.T) {
	cases := []struct {
		name     string
		page     int
		pageSize int
		total    int64
		want     PaginationDetails
	}{
		{
			name: "empty", page: 1, pageSize: 12, total: 0,
			want: PaginationDetails{Page: 1, PageSize: 12, Total: 0, TotalPages: 0, HasNextPage: false, HasPrevPage: false},
		},
		{
			name: "single partial page", page: 1, pageSize: 12, total: 5,
			want: PaginationDetails{Page: 1, PageSize: 12, Total: 5, TotalPages: 1, HasNextPage: false, HasPrevPage: false},
		},
		{
			name: "first of many", page: 1, pageSize: 10, total: 25,
			want: PaginationDetails{Page: 1, PageSize: 10, Total: 25, TotalPages: 3, HasNextPage: true, HasPrevPage: false},
		},
		{
			name: "middle page", page: 2, pageSize: 10, total: 25,
			want: PaginationDetails{Page: 2, PageSize: 10, Total: 25, TotalPages: 3, HasNextPage: true, HasPrevPage: true},
		},
		{
			name: "last page", page: 3, pageSize: 10, total: 25,
			want: PaginationDetails{Page: 3, PageSize: 10, Total: 25, TotalPages: 3, HasNextPage: false, HasPrevPage: true},
		},
		{
			name: "exact multiple", page: 2, pageSize: 10, total: 20,
			want: PaginationDetails{Page: 2, PageSize: 10, Total: 20, TotalPages: 2, HasNextPage: false, HasPrevPage: true},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := paginationDetails(tc.page, tc.pageSize, tc.total)
			if got != tc.want {
				t.Errorf("paginationDetails(%d, %d, %d) = %+v, want %+v", tc.page, tc.pageSize, tc.total, got, tc.want)
			}
		})
	}
}
