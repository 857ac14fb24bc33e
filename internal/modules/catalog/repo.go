package catalog

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

type GormRepo struct{ db *gorm.DB }

func NewGormRepo(db *gorm.DB) *GormRepo { return &GormRepo{db: db} }

var _ Repository = (*GormRepo)(nil)

func (r *GormRepo) ActiveCategories(ctx context.Context) ([]Category, error) {
	var items []Category
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Preload("Subcategories", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("name asc")
		}).
		Order("name asc").
		Find(&items).Error
	return items, err
}

func (r *GormRepo) CategoryBySlug(ctx context.Context, slug string) (Category, error) {
	var c Category
	err := r.db.WithContext(ctx).
		Where("slug = ? AND is_active = ?", slug, true).
		Preload("Subcategories", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("name asc")
		}).
		First(&c).Error
	return c, err
}

func (r *GormRepo) SubCategoryBySlug(ctx context.Context, categoryID, slug string) (SubCategory, error) {
	var s SubCategory
	err := r.db.WithContext(ctx).
		Where("category_id = ? AND slug = ? AND is_active = ?", categoryID, slug, true).
		First(&s).Error
	return s, err
}

// sellable narrows any product query to what the storefront may show.
func sellable(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ? AND is_available = ?", true, true)
}

func withCardPreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Category").
		Preload("SubCategory").
		Preload("Brand").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc, id asc")
		}).
		Preload("Variants", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_available = ?", true)
		})
}

func (r *GormRepo) HomeRow(ctx context.Context, flag HomeFlag, limit int) ([]Product, error) {
	if limit <= 0 {
		limit = 8
	}
	switch flag {
	case FlagFeatured, FlagNewArrival, FlagBestSeller, FlagOnSale:
	default:
		return nil, errors.New("catalog: unknown home flag")
	}

	var items []Product
	err := withCardPreloads(sellable(r.db.WithContext(ctx).Model(&Product{}))).
		Where(string(flag)+" = ?", true).
		Order("created_at desc").
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (r *GormRepo) List(ctx context.Context, p ListParams) (ListResult, error) {
	if p.PageSize <= 0 {
		p.PageSize = 12
	}
	if p.Page < 1 {
		p.Page = 1
	}

	q := sellable(r.db.WithContext(ctx).Model(&Product{}))
	if p.CategoryID != "" {
		q = q.Where("products.category_id = ?", p.CategoryID)
	}
	if p.SubCategoryID != "" {
		q = q.Where("products.sub_category_id = ?", p.SubCategoryID)
	}
	if p.SubcategorySlug != "" {
		q = q.Where("products.sub_category_id IN (?)",
			r.db.Model(&SubCategory{}).Select("id").Where("slug = ?", p.SubcategorySlug))
	}
	if p.FitTypeSlug != "" {
		q = q.Where("products.fit_type_id IN (?)",
			r.db.Model(&FitType{}).Select("id").Where("slug = ?", p.FitTypeSlug))
	}
	if p.BrandSlug != "" {
		q = q.Where("products.brand_id IN (?)",
			r.db.Model(&Brand{}).Select("id").Where("slug = ?", p.BrandSlug))
	}
	if p.ColorName != "" {
		q = q.Where("products.id IN (?)",
			r.db.Model(&ProductVariant{}).Select("product_id").
				Joins("JOIN colors ON colors.id = product_variants.color_id").
				Where("colors.name LIKE ?", "%"+p.ColorName+"%"))
	}
	if p.SizeName != "" {
		q = q.Where("products.id IN (?)",
			r.db.Model(&ProductVariant{}).Select("product_id").
				Joins("JOIN sizes ON sizes.id = product_variants.size_id").
				Where("sizes.name LIKE ?", "%"+p.SizeName+"%"))
	}
	if p.MinPrice != nil {
		q = q.Where("products.price >= ?", *p.MinPrice)
	}
	if p.MaxPrice != nil {
		q = q.Where("products.price <= ?", *p.MaxPrice)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return ListResult{}, err
	}

	switch p.Sort {
	case SortPriceLow:
		q = q.Order("price asc")
	case SortPriceHigh:
		q = q.Order("price desc")
	case SortNewest:
		q = q.Order("created_at desc")
	case SortPopular:
		q = q.Order("is_best_seller desc, created_at desc")
	default:
		q = q.Order("name asc")
	}

	var items []Product
	err := withCardPreloads(q).
		Limit(p.PageSize).
		Offset((p.Page - 1) * p.PageSize).
		Find(&items).Error
	return ListResult{Items: items, Total: total}, err
}

func (r *GormRepo) PriceRangeFor(ctx context.Context, categoryID, subCategoryID string) (PriceRange, error) {
	q := sellable(r.db.WithContext(ctx).Model(&Product{}))
	if subCategoryID != "" {
		q = q.Where("sub_category_id = ?", subCategoryID)
	} else if categoryID != "" {
		q = q.Where("category_id = ?", categoryID)
	}
	var pr PriceRange
	err := q.Select("COALESCE(MIN(price), 0) AS min, COALESCE(MAX(price), 0) AS max").Scan(&pr).Error
	return pr, err
}

func (r *GormRepo) ProductBySlug(ctx context.Context, slug string) (Product, error) {
	var p Product
	err := withCardPreloads(sellable(r.db.WithContext(ctx).Model(&Product{}))).
		Preload("FitType").
		Preload("Variants.Color").
		Preload("Variants.Size").
		Where("slug = ?", slug).
		First(&p).Error
	return p, err
}

func (r *GormRepo) ProductByID(ctx context.Context, id string) (Product, error) {
	var p Product
	err := withCardPreloads(r.db.WithContext(ctx).Model(&Product{})).
		Where("id = ?", id).
		First(&p).Error
	return p, err
}

func (r *GormRepo) Related(ctx context.Context, categoryID, excludeProductID string, limit int) ([]Product, error) {
	if limit <= 0 {
		limit = 8
	}
	var items []Product
	err := withCardPreloads(sellable(r.db.WithContext(ctx).Model(&Product{}))).
		Where("category_id = ? AND id <> ?", categoryID, excludeProductID).
		Order("created_at desc").
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (r *GormRepo) Search(ctx context.Context, query string, limit int) ([]Product, error) {
	if limit <= 0 {
		limit = 10
	}
	like := "%" + query + "%"
	var items []Product
	err := withCardPreloads(sellable(r.db.WithContext(ctx).Model(&Product{}))).
		Joins("LEFT JOIN brands ON brands.id = products.brand_id").
		Joins("JOIN categories ON categories.id = products.category_id").
		Where(r.db.
			Where("products.name LIKE ?", like).
			Or("products.description LIKE ?", like).
			Or("brands.name LIKE ?", like).
			Or("categories.name LIKE ?", like)).
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (r *GormRepo) Variants(ctx context.Context, f VariantFilter) ([]ProductVariant, error) {
	q := r.db.WithContext(ctx).Model(&ProductVariant{}).
		Preload("Product").
		Preload("Color").
		Preload("Size").
		Where("product_id = ? AND is_available = ?", f.ProductID, true)
	if f.ColorID != "" {
		q = q.Where("color_id = ?", f.ColorID)
	}
	if f.SizeID != "" {
		q = q.Where("size_id = ?", f.SizeID)
	}
	var items []ProductVariant
	err := q.Find(&items).Error
	return items, err
}

func (r *GormRepo) VariantByID(ctx context.Context, id string) (ProductVariant, error) {
	var v ProductVariant
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Color").
		Preload("Size").
		First(&v, "id = ?", id).Error
	return v, err
}

func (r *GormRepo) FirstAvailableVariant(ctx context.Context, productID string) (ProductVariant, error) {
	var v ProductVariant
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Color").
		Preload("Size").
		Where("product_id = ? AND is_available = ? AND stock_quantity > 0", productID, true).
		Order("created_at asc").
		First(&v).Error
	return v, err
}

func (r *GormRepo) ActiveFitTypes(ctx context.Context) ([]FitType, error) {
	var items []FitType
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("name asc").Find(&items).Error
	return items, err
}

func (r *GormRepo) ActiveBrands(ctx context.Context) ([]Brand, error) {
	var items []Brand
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("name asc").Find(&items).Error
	return items, err
}

func (r *GormRepo) ActiveColors(ctx context.Context) ([]Color, error) {
	var items []Color
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("name asc").Find(&items).Error
	return items, err
}

func (r *GormRepo) ActiveSizes(ctx context.Context) ([]Size, error) {
	var items []Size
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("size_type asc, position asc, name asc").Find(&items).Error
	return items, err
}

// AvailableColors: distinct active colors with at least one in-stock variant.
func (r *GormRepo) AvailableColors(ctx context.Context, productID string) ([]Color, error) {
	var items []Color
	err := r.db.WithContext(ctx).Model(&Color{}).
		Distinct("colors.*").
		Joins("JOIN product_variants pv ON pv.color_id = colors.id").
		Where("colors.is_active = ? AND pv.product_id = ? AND pv.stock_quantity > 0 AND pv.is_available = ?", true, productID, true).
		Order("colors.name asc").
		Find(&items).Error
	return items, err
}

func (r *GormRepo) AvailableSizes(ctx context.Context, productID string) ([]Size, error) {
	var items []Size
	err := r.db.WithContext(ctx).Model(&Size{}).
		Distinct("sizes.*").
		Joins("JOIN product_variants pv ON pv.size_id = sizes.id").
		Where("sizes.is_active = ? AND pv.product_id = ? AND pv.stock_quantity > 0 AND pv.is_available = ?", true, productID, true).
		Order("sizes.size_type asc, sizes.position asc, sizes.name asc").
		Find(&items).Error
	return items, err
}

// IsDuplicateKey reports a MySQL 1062 unique violation.
func IsDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == 1062
	}
	return false
}
