package bookstoretests

import (
	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/annotations"
	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/apiclient"
	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/assertions"
	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/datagen"
	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/endpoints"
	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/servicedef"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const (
	detailBookNotFound = "Book not found"
	messageBookDeleted = "Book deleted successfully"

	missingBookID = 99999
	invalidBookID = "invalid-id"
)

func newBookParams() servicedef.BookParams {
	return servicedef.BookParams(datagen.Book())
}

func DoBookTests(t *T) {
	t.Run("list", doListBooksTests)
	t.Run("create", doCreateBookTests)
	t.Run("get", doGetBookTests)
	t.Run("update", doUpdateBookTests)
	t.Run("delete", doDeleteBookTests)
}

func doListBooksTests(t *T) {
	t.Run("returns an array", func(t *T) {
		t.Annotate(annotations.CRUD()...)
		t.Annotate(annotations.Story("List Books"), annotations.Severity(annotations.SeverityHigh))
		t.Trace("Getting all books from the API....")

		resp := t.Get(endpoints.GetAllBooks, 200)
		books := resp.JSON()

		assertions.NotNull(t, books, "Validating response is not null")
		assertions.Equals(t, books.Type(), ldvalue.ArrayType, "Validating response is an array")
		requireStandardHeaders(t, resp)
		t.Trace("Successfully retrieved %d books!!!!", books.Count())
	})

	t.Run("repeated reads are identical", func(t *T) {
		t.Annotate(annotations.CRUD()...)
		t.Annotate(
			annotations.Story("List Books"),
			annotations.Description("Two reads of the book list with no change in between return the same books"),
		)
		var first, second []servicedef.BookResponse
		t.DecodeBody(t.Get(endpoints.GetAllBooks, 200), &first)
		t.DecodeBody(t.Get(endpoints.GetAllBooks, 200), &second)

		diff := cmp.Diff(first, second)
		assertions.Equals(t, diff, "", "Validating book list did not change between reads")
	})

	t.Run("empty list is an array", func(t *T) {
		t.Annotate(annotations.CRUD()...)
		t.Annotate(
			annotations.Description("The book list is a JSON array even when there are no books"),
			annotations.Story("List Books"),
			annotations.Severity(annotations.SeverityLow),
		)
		t.Trace("Validates proper handling of scenarios with no books....")

		resp := t.Get(endpoints.GetAllBooks, 200)
		books := resp.JSON()

		assertions.Equals(t, books.Type(), ldvalue.ArrayType, "Validating response is an array")
		if books.Count() == 0 {
			assertions.Equals(t, books.JSONString(), "[]", "Validating empty list is rendered as []")
		}
		requireStandardHeaders(t, resp)
	})
}

func doCreateBookTests(t *T) {
	t.Run("new book", func(t *T) {
		t.Annotate(annotations.CRUD()...)
		t.Annotate(
			annotations.Description("Creates a book with random content and keeps its id"),
			annotations.Story("Create Book"),
			annotations.Severity(annotations.SeverityCritical),
		)
		token := t.RequireAccessToken()
		t.Trace("Creating a new book....")

		params := newBookParams()
		resp := t.Post(endpoints.CreateBook, params, 201, apiclient.BearerToken(token))
		var book servicedef.BookResponse
		t.DecodeBody(resp, &book)
		t.Data().BookID = ldvalue.NewOptionalInt(book.ID)

		assertions.NotNull(t, resp.JSON().GetByKey("id"), "Validating book ID is not null")
		requireBookMatches(t, book, params, "")
		requireStandardHeaders(t, resp)
		t.Trace("Successfully created book with ID: %d!!!!", book.ID)
	})

	t.Run("without authentication", func(t *T) {
		t.Annotate(annotations.CRUD()...)
		t.Annotate(
			annotations.Description("Books can be created without a token, since the service does not enforce authentication"),
			annotations.Story("Create Book"),
		)
		t.Trace("Attempting to create book without authentication (authentication disabled)....")

		params := newBookParams()
		resp := t.Post(endpoints.CreateBook, params, 201)
		var book servicedef.BookResponse
		t.DecodeBody(resp, &book)

		assertions.NotNull(t, resp.JSON().GetByKey("id"), "Validating book ID is not null")
		requireBookMatches(t, book, params, "")
		t.Trace("Book created without authentication as expected (authentication disabled)!!!!")
	})
}

func doGetBookTests(t *T) {
	t.Run("by id", func(t *T) {
		t.Annotate(annotations.CRUD()...)
		t.Annotate(annotations.Story("Get Book"), annotations.Severity(annotations.SeverityHigh))
		id := t.RequireBookID()
		t.Trace("Getting book with ID: %d....", id)

		resp := t.Get(endpoints.GetBook.With(endpoints.BookID, id), 200)
		body := resp.JSON()

		assertions.Equals(t, body.GetByKey("id").IntValue(), id, "Validating book ID")
		for _, field := range []string{"title", "author", "description", "price"} {
			assertions.NotNull(t, body.GetByKey(field), "Validating book "+field+" is not null")
		}
		requireStandardHeaders(t, resp)
		t.Trace("Successfully retrieved book with ID: %d!!!!", id)
	})

	t.Run("missing book", func(t *T) {
		t.Annotate(annotations.CRUD()...)
		t.Annotate(annotations.Story("Get Book"))
		t.Trace("Getting non-existent book....")

		resp := t.Get(endpoints.GetBook.With(endpoints.BookID, missingBookID), 404)

		assertions.ErrorHasDetail(t, resp, "Validating error response contains detail")
		assertions.Equals(t, resp.JSON().GetByKey("detail").StringValue(), detailBookNotFound, "Validating detail value")
		t.Trace("Non-existent book returned 404 as expected!!!!")
	})

	t.Run("invalid id", func(t *T) {
		t.Annotate(annotations.CRUD()...)
		t.Annotate(annotations.Story("Get Book"))
		t.Trace("Getting book with invalid ID format....")

		resp := t.Get(endpoints.GetBook.With(endpoints.BookID, invalidBookID), 422)

		assertions.ErrorHasDetail(t, resp, "Validating error response contains detail")
		t.Trace("Invalid book ID format returned 422 as expected!!!!")
	})
}

func doUpdateBookTests(t *T) {
	t.Run("existing book", func(t *T) {
		t.Annotate(annotations.CRUD()...)
		t.Annotate(annotations.Story("Update Book"), annotations.Severity(annotations.SeverityHigh))
		token := t.RequireAccessToken()
		id := t.RequireBookID()
		t.Trace("Updating book with ID: %d....", id)

		params := newBookParams()
		resp := t.Put(endpoints.UpdateBook.With(endpoints.BookID, id), params, 200, apiclient.BearerToken(token))
		var book servicedef.BookResponse
		t.DecodeBody(resp, &book)

		assertions.Equals(t, book.ID, id, "Validating book ID")
		requireBookMatches(t, book, params, "updated ")
		requireStandardHeaders(t, resp)
		t.Trace("Successfully updated book with ID: %d!!!!", id)
	})

	t.Run("missing book", func(t *T) {
		t.Annotate(annotations.CRUD()...)
		t.Annotate(annotations.Story("Update Book"))
		token := t.RequireAccessToken()
		t.Trace("Updating non-existent book....")

		path := endpoints.UpdateBook.With(endpoints.BookID, missingBookID)
		resp := t.Put(path, newBookParams(), 404, apiclient.BearerToken(token))

		assertions.ErrorHasDetail(t, resp, "Validating error response contains detail")
		t.Trace("Non-existent book update returned 404 as expected!!!!")
	})

	t.Run("without authentication", func(t *T) {
		t.Annotate(annotations.CRUD()...)
		t.Annotate(
			annotations.Description("Books can be updated without a token, since the service does not enforce authentication"),
			annotations.Story("Update Book"),
			annotations.Severity(annotations.SeverityMedium),
		)
		t.Trace("Updating book without authentication....")

		id := createUnauthenticatedBook(t)
		params := newBookParams()
		resp := t.Put(endpoints.UpdateBook.With(endpoints.BookID, id), params, 200)
		var book servicedef.BookResponse
		t.DecodeBody(resp, &book)

		assertions.Equals(t, book.ID, id, "Validating book ID")
		requireBookMatches(t, book, params, "updated ")
		requireStandardHeaders(t, resp)
		t.Trace("Book with ID: %d updated without authentication as expected!!!!", id)
	})
}

func doDeleteBookTests(t *T) {
	t.Run("existing book", func(t *T) {
		t.Annotate(annotations.CRUD()...)
		t.Annotate(annotations.Story("Delete Book"), annotations.Severity(annotations.SeverityHigh))
		token := t.RequireAccessToken()
		id := t.RequireBookID()
		t.Trace("Deleting book with ID: %d....", id)

		resp := t.Delete(endpoints.DeleteBook.With(endpoints.BookID, id), 200, apiclient.BearerToken(token))

		assertions.Equals(t, resp.Status(), 200, "Validating delete response status")
		assertions.Equals(t, resp.JSON().GetByKey("message").StringValue(), messageBookDeleted, "Validating message value")
		requireStandardHeaders(t, resp)

		t.Get(endpoints.GetBook.With(endpoints.BookID, id), 404)
		t.Trace("Successfully deleted book with ID: %d!!!!", id)
	})

	t.Run("missing book", func(t *T) {
		t.Annotate(annotations.CRUD()...)
		t.Annotate(annotations.Story("Delete Book"))
		token := t.RequireAccessToken()
		t.Trace("Deleting non-existent book....")

		resp := t.Delete(endpoints.DeleteBook.With(endpoints.BookID, missingBookID), 404, apiclient.BearerToken(token))

		assertions.ErrorHasDetail(t, resp, "Validating error response contains detail")
		t.Trace("Non-existent book deletion returned 404 as expected!!!!")
	})

	t.Run("without authentication", func(t *T) {
		t.Annotate(annotations.CRUD()...)
		t.Annotate(
			annotations.Description("Books can be deleted without a token, since the service does not enforce authentication"),
			annotations.Story("Delete Book"),
			annotations.Severity(annotations.SeverityMedium),
		)
		t.Trace("Deleting book without authentication....")

		id := createUnauthenticatedBook(t)
		resp := t.Delete(endpoints.DeleteBook.With(endpoints.BookID, id), 200)

		assertions.Equals(t, resp.JSON().GetByKey("message").StringValue(), messageBookDeleted, "Validating message value")
		requireStandardHeaders(t, resp)
		t.Trace("Book with ID: %d deleted!!!!", id)
	})
}

// createUnauthenticatedBook creates a book of the test's own, without a token, and returns its id.
func createUnauthenticatedBook(t *T) int {
	resp := t.Post(endpoints.CreateBook, newBookParams(), 201)
	var book servicedef.BookResponse
	t.DecodeBody(resp, &book)
	assertions.NotEquals(t, book.ID, 0, "")
	return book.ID
}

func requireBookMatches(t *T, actual servicedef.BookResponse, expected servicedef.BookParams, qualifier string) {
	assertions.Equals(t, actual.Title, expected.Title, "Validating "+qualifier+"book title")
	assertions.Equals(t, actual.Author, expected.Author, "Validating "+qualifier+"book author")
	assertions.Equals(t, actual.Description, expected.Description, "Validating "+qualifier+"book description")
	assertions.Equals(t, actual.Price, expected.Price, "Validating "+qualifier+"book price")
}
