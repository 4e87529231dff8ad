package myErrors

import (
	"errors"
	"strings"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	// ErrCacheMiss 表示在缓存层未找到对应的键值
	ErrCacheMiss = errors.New("cache: key not found (miss)")

	// ErrRepoNotFound 表示仓库层未查到记录，对外映射为 404
	ErrRepoNotFound = commonerrors.ErrRepoNotFound

	// ErrValidation 表示入参非法或外键无法解析，对外映射为 400
	ErrValidation = errors.New("validation failed")

	// ErrConflict 表示并发写入撞上唯一约束，对外映射为 409
	ErrConflict = errors.New("conflict")

	// ErrStorage 表示对象存储读写失败
	ErrStorage = errors.New("storage failure")

	// ErrCollaborator 表示外部协作服务不可达或返回非预期状态
	ErrCollaborator = commonerrors.ErrThirdPartyServiceError
)

// mysqlDuplicateEntry 是 MySQL 唯一键冲突的错误码
const mysqlDuplicateEntry = 1062

// IsDuplicateKey 判断错误是否为唯一键冲突
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlDuplicateEntry
	}
	// SQLite 驱动未翻译时只能从错误信息识别
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
