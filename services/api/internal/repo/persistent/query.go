package persistent

import (
	"strings"

	"vidtube/services/api/internal/entity"

	"gorm.io/gorm"
)

// paginate counts the rows matched by q, then loads one page of them into dest.
// columns, when set, only applies to the page query so joins do not confuse the count.
func paginate(q *gorm.DB, columns, order string, page entity.PageRequest, dest interface{}) (int64, error) {
	base := q.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}

	pageQuery := base
	if columns != "" {
		pageQuery = pageQuery.Select(columns)
	}
	if err := pageQuery.Order(order).Offset(page.Offset()).Limit(page.Limit).Scan(dest).Error; err != nil {
		return 0, err
	}
	return total, nil
}

var videoSortColumns = map[entity.VideoSortField]string{
	entity.SortByCreatedAt: "created_at",
	entity.SortByViews:     "views",
	entity.SortByDuration:  "duration",
	entity.SortByTitle:     "title",
}

// videoOrder defaults to insertion order. id breaks ties so pages are stable.
func videoOrder(table string, filter entity.VideoFilter) string {
	column, ok := videoSortColumns[filter.SortBy]
	if !ok {
		column = "created_at"
	}
	dir := "ASC"
	if filter.Descending {
		dir = "DESC"
	}
	return table + "." + column + " " + dir + ", " + table + ".id ASC"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
