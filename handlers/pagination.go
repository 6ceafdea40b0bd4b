// SPDX-License-Identifier: GPL-3.0-only

package handlers

func paginationDetails(page, pageSize int, total int64) PaginationDetails {
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return PaginationDetails{
		Page:        page,
		PageSize:    pageSize,
		Total:       total,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}
