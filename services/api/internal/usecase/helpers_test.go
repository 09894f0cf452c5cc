package usecase

import (
	"fmt"

	"vidtube/pkg/apperr"
	"vidtube/services/api/internal/entity"
)

const (
	userA entity.UserID = "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"
	userB entity.UserID = "bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb"
)

func testUUID(n int) string {
	return fmt.Sprintf("00000000-0000-0000-0000-%012d", n)
}

func kindOf(err error) apperr.Kind {
	return apperr.KindOf(err)
}
