package render

import "io/fs"

// Listing renders the directory listing page for uri. Entries are laid
// out in whatever order the enumeration yielded them; directories get a
// trailing slash on both the link text and the href.
func Listing(uri string, entries []fs.DirEntry) []byte {
	buff := make([]byte, 0, 1024)
	buff = append(buff, "<html><head><title>Directory listing for "...)
	buff = append(buff, uri...)
	buff = append(buff, "</title></head><body><h1>Directory listing for "...)
	buff = append(buff, uri...)
	buff = append(buff, "</h1><hr><ul>"...)

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			name += "/"
		}

		buff = append(buff, `<li><a href="`...)
		buff = append(buff, name...)
		buff = append(buff, `">`...)
		buff = append(buff, name...)
		buff = append(buff, "</a></li>"...)
	}

	return append(buff, "</ul><hr></body></html>"...)
}
