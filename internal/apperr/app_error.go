package apperr

import "github.com/haiminhng/retail-console/pkg/zerror"

const (
	ValidationErrorCode  = "VALIDATION_FAILED"
	ProductNotFoundCode  = "PRODUCT_NOT_FOUND"
	CustomerNotFoundCode = "CUSTOMER_NOT_FOUND"
	InvalidQuantityCode  = "INVALID_QUANTITY"
	InvalidDiscountCode  = "INVALID_DISCOUNT"
	InvalidSizeCode      = "INVALID_SIZE"
)

var (
	ValidationErr       = zerror.NewValidationFailed(ValidationErrorCode, "validation error")
	ProductNotFoundErr  = zerror.NewNotFound(ProductNotFoundCode, "product not found")
	CustomerNotFoundErr = zerror.NewNotFound(CustomerNotFoundCode, "customer not found")
	InvalidQuantityErr  = zerror.NewUnprocessableEntity(InvalidQuantityCode, "quantity must be positive and not exceed available stock")
	InvalidDiscountErr  = zerror.NewBadRequest(InvalidDiscountCode, "discount must be between 0 and 100")
	InvalidSizeErr      = zerror.NewBadRequest(InvalidSizeCode, "size is not offered for this product")
)
