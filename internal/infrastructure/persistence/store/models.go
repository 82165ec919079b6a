package store

import (
	"time"

	"github.com/shopspring/decimal"
)

// 设计说明：
// 1. 这是infrastructure层的数据模型，包含GORM tag
// 2. domain层实体不依赖GORM，Repository负责两者之间的转换
// 3. 外键规则：
//    - books.author_id    → authors.id     ON DELETE RESTRICT（有书的作者不能删）
//    - books.publisher_id → publishers.id  ON DELETE SET NULL
//    - insights.book_id   → books.id       ON DELETE SET NULL
//    两侧tag保持一致，GORM只会为同一外键创建一个约束

// UserModel GORM用户模型
type UserModel struct {
	ID        uint      `gorm:"primaryKey"`
	Username  string    `gorm:"uniqueIndex;size:80;not null;comment:用户名"`
	Email     string    `gorm:"uniqueIndex;size:120;not null;comment:邮箱"`
	Password  string    `gorm:"size:255;not null;comment:密码（bcrypt加密）"`
	IsActive  bool      `gorm:"not null;default:true;comment:是否启用"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (UserModel) TableName() string {
	return "users"
}

// AuthorModel GORM作者模型
type AuthorModel struct {
	ID        uint        `gorm:"primaryKey"`
	FirstName string      `gorm:"size:50;not null;comment:名"`
	LastName  string      `gorm:"size:50;not null;comment:姓"`
	Biography *string     `gorm:"type:text;comment:简介"`
	BirthDate *time.Time  `gorm:"type:date;comment:出生日期"`
	Books     []BookModel `gorm:"foreignKey:AuthorID;constraint:OnDelete:RESTRICT"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName 指定表名
func (AuthorModel) TableName() string {
	return "authors"
}

// PublisherModel GORM出版社模型
type PublisherModel struct {
	ID           uint        `gorm:"primaryKey"`
	Name         string      `gorm:"size:100;not null;index;comment:名称"`
	FoundingYear *int        `gorm:"comment:成立年份"`
	Website      *string     `gorm:"size:200;comment:官网"`
	Books        []BookModel `gorm:"foreignKey:PublisherID;constraint:OnDelete:SET NULL"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName 指定表名
func (PublisherModel) TableName() string {
	return "publishers"
}

// BookModel GORM图书模型
// 设计说明:
// 1. ISBN可空且唯一(多个NULL不冲突)
// 2. 价格decimal(10,2)，使用shopspring/decimal读写
type BookModel struct {
	ID              uint             `gorm:"primaryKey"`
	Title           string           `gorm:"size:200;not null;index;comment:书名"`
	ISBN            *string          `gorm:"column:isbn;uniqueIndex;size:13;comment:ISBN号"`
	PublicationDate *time.Time       `gorm:"type:date;comment:出版日期"`
	Price           *decimal.Decimal `gorm:"type:decimal(10,2);comment:价格"`
	Description     *string          `gorm:"type:text;comment:图书描述"`
	AuthorID        *uint            `gorm:"index;comment:作者ID"`
	PublisherID     *uint            `gorm:"index;comment:出版社ID"`
	Author          *AuthorModel     `gorm:"foreignKey:AuthorID;constraint:OnDelete:RESTRICT"`
	Publisher       *PublisherModel  `gorm:"foreignKey:PublisherID;constraint:OnDelete:SET NULL"`
	Insights        []InsightModel   `gorm:"foreignKey:BookID;constraint:OnDelete:SET NULL"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// InsightModel GORM书评模型
type InsightModel struct {
	ID          uint       `gorm:"primaryKey"`
	Title       string     `gorm:"size:200;not null;comment:标题"`
	Description string     `gorm:"type:text;not null;comment:内容"`
	BookID      *uint      `gorm:"index;comment:图书ID"`
	Book        *BookModel `gorm:"foreignKey:BookID;constraint:OnDelete:SET NULL"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName 指定表名
func (InsightModel) TableName() string {
	return "insights"
}
