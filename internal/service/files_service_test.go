package service

import (
	"testing"

	"studysnap-be/internal/config"
)

func testSpacesConfig() config.SpacesConfig {
	return config.SpacesConfig{
		Endpoint:       "nyc3.digitaloceanspaces.com",
		UseSSL:         true,
		NoteDataSpace:  "studysnap-notes",
		ImageDataSpace: "studysnap-images",
	}
}

func TestIsValidFileType(t *testing.T) {
	svc := NewFilesService(nil, testSpacesConfig())

	tests := []struct {
		name    string
		space   Space
		fileUri string
		want    bool
	}{
		{name: "pdf note", space: SpaceNotes, fileUri: "a.pdf", want: true},
		{name: "docx note", space: SpaceNotes, fileUri: "a.docx", want: true},
		{name: "doc note", space: SpaceNotes, fileUri: "a.doc", want: true},
		{name: "uppercase extension", space: SpaceNotes, fileUri: "a.PDF", want: true},
		{name: "image in note space", space: SpaceNotes, fileUri: "a.png", want: false},
		{name: "no extension", space: SpaceNotes, fileUri: "plain", want: false},
		{name: "png image", space: SpaceImages, fileUri: "a.png", want: true},
		{name: "jpg image", space: SpaceImages, fileUri: "a.jpg", want: true},
		{name: "gif image rejected", space: SpaceImages, fileUri: "a.gif", want: false},
		{name: "pdf in image space", space: SpaceImages, fileUri: "a.pdf", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.IsValidFileType(tt.space, tt.fileUri); got != tt.want {
				t.Errorf("IsValidFileType(%s, %q) = %v, want %v", tt.space, tt.fileUri, got, tt.want)
			}
		})
	}
}

func TestCDNUrl(t *testing.T) {
	svc := NewFilesService(nil, testSpacesConfig())

	got := svc.CDNUrl(SpaceNotes, "abc.pdf")
	want := "https://studysnap-notes.nyc3.digitaloceanspaces.com/abc.pdf"
	if got != want {
		t.Errorf("CDNUrl = %q, want %q", got, want)
	}

	cfg := testSpacesConfig()
	cfg.UseSSL = false
	svc = NewFilesService(nil, cfg)

	got = svc.CDNUrl(SpaceImages, "thumb.png")
	want = "http://studysnap-images.nyc3.digitaloceanspaces.com/thumb.png"
	if got != want {
		t.Errorf("CDNUrl = %q, want %q", got, want)
	}
}
