package web

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/vbonduro/lostfound/internal/service"
	"github.com/vbonduro/lostfound/internal/store"
)

func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	posts, err := s.service.List(r.Context())
	if err != nil {
		http.Error(w, "failed to list posts", http.StatusInternalServerError)
		s.logger.Error("list posts failed", "error", err)
		return
	}

	err = s.renderPage(w, http.StatusOK,
		map[string]any{"Posts": posts, "Flashes": s.popFlashes(w, r)},
		"base.html", "pages/feed.html",
	)
	if err != nil {
		s.logger.Error("render feed failed", "error", err)
	}
}

func (s *Server) handleNewPostForm(w http.ResponseWriter, r *http.Request) {
	s.renderNewPostForm(w, r, http.StatusOK, &PostForm{}, nil)
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	// Hard limit on the incoming body, covering the multipart image upload.
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		// The multipart reader does not always wrap the MaxBytesError it hit,
		// so fall back to matching its message.
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) || strings.Contains(err.Error(), "request body too large") {
			s.addFlash(w, r, "error", "Image is too large. Maximum file size is 5 MB.")
			http.Redirect(w, r, "/new", http.StatusSeeOther)
			return
		}
		http.Error(w, "failed to parse form", http.StatusBadRequest)
		return
	}

	form := &PostForm{
		Type:        r.FormValue("type"),
		ItemName:    r.FormValue("item_name"),
		Description: r.FormValue("description"),
		Location:    r.FormValue("location"),
		Contact:     r.FormValue("contact"),
	}

	// The file is read once into memory; validation and upload share the
	// same bytes, so measuring the size cannot disturb the upload.
	var imageData []byte
	var imageName string
	if file, header, err := r.FormFile("image"); err == nil && header.Filename != "" {
		defer closeWithLog(file, "upload file", s.logger)
		imageData, err = io.ReadAll(file)
		if err != nil {
			http.Error(w, "failed to read file", http.StatusInternalServerError)
			s.logger.Error("read upload failed", "error", err)
			return
		}
		imageName = header.Filename
		form.File = &FormFile{Name: header.Filename, Size: int64(len(imageData))}
	}

	if errs := validatePostForm(form); len(errs) > 0 {
		s.renderNewPostForm(w, r, http.StatusUnprocessableEntity, form, errs)
		return
	}

	id, imageWarning, err := s.service.Create(r.Context(), service.CreatePostInput{
		Type:        form.Type,
		ItemName:    form.ItemName,
		Description: form.Description,
		Location:    form.Location,
		Contact:     form.Contact,
		ImageData:   imageData,
		ImageName:   imageName,
	})
	if err != nil {
		http.Error(w, "failed to create post", http.StatusInternalServerError)
		s.logger.Error("create post failed", "error", err)
		return
	}

	if imageWarning {
		s.addFlash(w, r, "warning", "Image upload failed. Post saved without image.")
	}
	s.addFlash(w, r, "success", "Post created successfully!")
	http.Redirect(w, r, "/posts/"+id, http.StatusSeeOther)
}

func (s *Server) handlePostDetail(w http.ResponseWriter, r *http.Request) {
	post, err := s.service.Get(r.Context(), r.PathValue("id"))
	if errors.Is(err, store.ErrNotFound) {
		s.handleNotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "failed to get post", http.StatusInternalServerError)
		s.logger.Error("get post failed", "id", r.PathValue("id"), "error", err)
		return
	}

	err = s.renderPage(w, http.StatusOK,
		map[string]any{"Post": post, "Flashes": s.popFlashes(w, r)},
		"base.html", "pages/post_detail.html",
	)
	if err != nil {
		s.logger.Error("render post detail failed", "error", err)
	}
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	err := s.renderPage(w, http.StatusNotFound,
		map[string]any{"Flashes": s.popFlashes(w, r)},
		"base.html", "pages/404.html",
	)
	if err != nil {
		s.logger.Error("render 404 failed", "error", err)
	}
}

func (s *Server) renderNewPostForm(w http.ResponseWriter, r *http.Request, status int, form *PostForm, errs []string) {
	err := s.renderPage(w, status,
		map[string]any{"Form": form, "Errors": errs, "Flashes": s.popFlashes(w, r)},
		"base.html", "pages/new_post.html",
	)
	if err != nil {
		s.logger.Error("render new post form failed", "error", err)
	}
}
