package handlers

import (
	"net/http"

	"wordbook"

	"github.com/gin-gonic/gin"
)

// @Summary      List categories
// @Description  Every category in the system with word count and up to three sample words.
// @Tags         categories
// @Produce      json
// @Success      200  {object}  wordbook.CategoryList
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/words [get]
// @Security     SessionCookie
func (h *Handler) listCategories(c *gin.Context) {
	categories, err := h.services.Categories.List(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, "categories_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, wordbook.CategoryList{Categories: categories})
}

// @Summary      Create category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body      wordbook.CategoryInput  true  "Category"
// @Success      201   {object}  wordbook.Category
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/words [post]
// @Security     SessionCookie
func (h *Handler) createCategory(c *gin.Context) {
	var input wordbook.CategoryInput
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	who := identity(c)
	category, err := h.services.Categories.Create(c.Request.Context(), who, input.Name)
	if err != nil {
		h.writeServiceError(c, "category_create_failed", err, "user_id", who.UserID)
		return
	}
	c.JSON(http.StatusCreated, category)
}

// @Summary      Rename category
// @Description  Only the owner may rename; other callers get 404.
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        category_id  path      int                     true  "Category ID"
// @Param        body         body      wordbook.CategoryInput  true  "New name (null clears it)"
// @Success      200          {object}  wordbook.Category
// @Failure      400          {object}  map[string]string
// @Failure      401          {object}  map[string]string
// @Failure      404          {object}  map[string]string
// @Failure      500          {object}  map[string]string
// @Router       /api/v1/words/{category_id} [patch]
// @Security     SessionCookie
func (h *Handler) renameCategory(c *gin.Context) {
	categoryID, ok := idParam(c, "category_id")
	if !ok {
		return
	}
	var input wordbook.CategoryInput
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	who := identity(c)
	category, err := h.services.Categories.Rename(c.Request.Context(), who, categoryID, input.Name)
	if err != nil {
		h.writeServiceError(c, "category_rename_failed", err, "user_id", who.UserID, "category_id", categoryID)
		return
	}
	c.JSON(http.StatusOK, category)
}

// @Summary      Delete category
// @Description  Only empty categories owned by the caller can be deleted.
// @Tags         categories
// @Param        category_id  path  int  true  "Category ID"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/words/{category_id} [delete]
// @Security     SessionCookie
func (h *Handler) deleteCategory(c *gin.Context) {
	categoryID, ok := idParam(c, "category_id")
	if !ok {
		return
	}
	who := identity(c)
	if err := h.services.Categories.Delete(c.Request.Context(), who, categoryID); err != nil {
		h.writeServiceError(c, "category_delete_failed", err, "user_id", who.UserID, "category_id", categoryID)
		return
	}
	c.Status(http.StatusNoContent)
}
