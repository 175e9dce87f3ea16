package handlers

import (
	"net/http"

	"wordbook"

	"github.com/gin-gonic/gin"
)

// @Summary      List words of a category
// @Description  Words of a category the caller owns. Someone else's category yields an empty list.
// @Tags         words
// @Produce      json
// @Param        category_id  path      int  true  "Category ID"
// @Success      200          {object}  wordbook.WordList
// @Failure      400          {object}  map[string]string
// @Failure      401          {object}  map[string]string
// @Failure      500          {object}  map[string]string
// @Router       /api/v1/words/{category_id} [get]
// @Security     SessionCookie
func (h *Handler) listWords(c *gin.Context) {
	categoryID, ok := idParam(c, "category_id")
	if !ok {
		return
	}
	who := identity(c)
	words, err := h.services.Words.List(c.Request.Context(), who, categoryID)
	if err != nil {
		h.writeServiceError(c, "words_list_failed", err, "user_id", who.UserID, "category_id", categoryID)
		return
	}
	c.JSON(http.StatusOK, wordbook.WordList{Words: words})
}

// @Summary      Add a word
// @Tags         words
// @Accept       json
// @Produce      json
// @Param        category_id  path      int                  true  "Category ID"
// @Param        body         body      wordbook.CreateWord  true  "Word"
// @Success      201          {object}  wordbook.Word
// @Failure      400          {object}  map[string]string
// @Failure      401          {object}  map[string]string
// @Failure      404          {object}  map[string]string
// @Failure      500          {object}  map[string]string
// @Router       /api/v1/words/{category_id} [post]
// @Security     SessionCookie
func (h *Handler) createWord(c *gin.Context) {
	categoryID, ok := idParam(c, "category_id")
	if !ok {
		return
	}
	var input wordbook.CreateWord
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	who := identity(c)
	word, err := h.services.Words.Create(c.Request.Context(), who, categoryID, input.Word)
	if err != nil {
		h.writeServiceError(c, "word_create_failed", err, "user_id", who.UserID, "category_id", categoryID)
		return
	}
	c.JSON(http.StatusCreated, word)
}

// @Summary      Delete a word
// @Description  The word must belong to the given category and the category to the caller; otherwise 404.
// @Tags         words
// @Param        category_id  path  int  true  "Category ID"
// @Param        word_id      path  int  true  "Word ID"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/words/{category_id}/{word_id} [delete]
// @Security     SessionCookie
func (h *Handler) deleteWord(c *gin.Context) {
	categoryID, ok := idParam(c, "category_id")
	if !ok {
		return
	}
	wordID, ok := idParam(c, "word_id")
	if !ok {
		return
	}
	who := identity(c)
	if err := h.services.Words.Delete(c.Request.Context(), who, categoryID, wordID); err != nil {
		h.writeServiceError(c, "word_delete_failed", err, "user_id", who.UserID, "category_id", categoryID, "word_id", wordID)
		return
	}
	c.Status(http.StatusNoContent)
}
