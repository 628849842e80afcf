package archive

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strings"

	"jdoc/internal/domain"
)

// Archive reads a javadoc library archive: a ZIP containing an optional
// info.xml with library metadata and one XML file per class, whose entry
// path maps to the fully qualified class name (java/util/List.xml ->
// java.util.List).
type Archive struct {
	path  string
	zr    *zip.ReadCloser
	lib   domain.LibraryRecord
	files map[string]*zip.File
}

type infoXML struct {
	XMLName           xml.Name `xml:"info"`
	Name              string   `xml:"name,attr"`
	Version           string   `xml:"version,attr"`
	BaseURL           string   `xml:"baseUrl,attr"`
	ProjectURL        string   `xml:"projectUrl,attr"`
	JavadocURLPattern string   `xml:"javadocUrlPattern,attr"`
}

type classXML struct {
	XMLName     xml.Name    `xml:"class"`
	FullName    string      `xml:"fullName,attr"`
	SimpleName  string      `xml:"simpleName,attr"`
	Modifiers   string      `xml:"modifiers,attr"`
	Deprecated  bool        `xml:"deprecated,attr"`
	SuperClass  string      `xml:"superClass,attr"`
	Interfaces  []string    `xml:"implements>interface"`
	Description string      `xml:"description"`
	Methods     []methodXML `xml:"method"`
}

type methodXML struct {
	Name        string     `xml:"name,attr"`
	Modifiers   string     `xml:"modifiers,attr"`
	Deprecated  bool       `xml:"deprecated,attr"`
	Anchor      string     `xml:"anchor,attr"`
	Parameters  []paramXML `xml:"parameter"`
	Description string     `xml:"description"`
}

type paramXML struct {
	Type  string `xml:"type,attr"`
	Array bool   `xml:"array,attr"`
}

// Open opens a javadoc archive. A missing or attribute-less info.xml is not
// an error; the library metadata is simply left empty.
func Open(path string) (*Archive, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive %s: %w", path, err)
	}

	a := &Archive{
		path:  path,
		zr:    zr,
		files: make(map[string]*zip.File),
	}

	for _, f := range zr.File {
		if f.FileInfo().IsDir() || !strings.HasSuffix(f.Name, ".xml") {
			continue
		}
		if f.Name == "info.xml" {
			if err := a.readInfo(f); err != nil {
				zr.Close()
				return nil, err
			}
			continue
		}
		a.files[entryClassName(f.Name)] = f
	}

	return a, nil
}

// Close closes the underlying ZIP file.
func (a *Archive) Close() error {
	return a.zr.Close()
}

// Library returns the archive's library metadata.
func (a *Archive) Library() domain.LibraryRecord {
	return a.lib
}

// ClassNames returns the fully qualified names of all classes in the
// archive, sorted.
func (a *Archive) ClassNames() []string {
	names := make([]string, 0, len(a.files))
	for name := range a.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Class reads one class record. It returns (nil, nil) when the archive has
// no such class.
func (a *Archive) Class(fullyQualified string) (*domain.ClassRecord, error) {
	f, ok := a.files[fullyQualified]
	if !ok {
		return nil, nil
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s in %s: %w", f.Name, a.path, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s in %s: %w", f.Name, a.path, err)
	}

	var cx classXML
	if err := xml.Unmarshal(data, &cx); err != nil {
		return nil, fmt.Errorf("failed to parse %s in %s: %w", f.Name, a.path, err)
	}

	return a.toRecord(fullyQualified, cx), nil
}

func (a *Archive) readInfo(f *zip.File) error {
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("failed to open info.xml in %s: %w", a.path, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return fmt.Errorf("failed to read info.xml in %s: %w", a.path, err)
	}

	var info infoXML
	if err := xml.Unmarshal(data, &info); err != nil {
		return fmt.Errorf("failed to parse info.xml in %s: %w", a.path, err)
	}

	a.lib = domain.LibraryRecord{
		Name:              info.Name,
		Version:           info.Version,
		BaseURL:           info.BaseURL,
		ProjectURL:        info.ProjectURL,
		JavadocURLPattern: info.JavadocURLPattern,
	}
	return nil
}

func (a *Archive) toRecord(fullyQualified string, cx classXML) *domain.ClassRecord {
	name := cx.FullName
	if name == "" {
		name = fullyQualified
	}
	className := domain.NewClassName(name)
	if cx.SimpleName != "" {
		className.Simple = cx.SimpleName
	}

	rec := &domain.ClassRecord{
		Name:        className,
		Modifiers:   splitModifiers(cx.Modifiers),
		Deprecated:  cx.Deprecated,
		Description: strings.TrimSpace(cx.Description),
	}

	if cx.SuperClass != "" {
		super := domain.NewClassName(cx.SuperClass)
		rec.SuperClass = &super
	}
	for _, iface := range cx.Interfaces {
		rec.Interfaces = append(rec.Interfaces, domain.NewClassName(iface))
	}
	for _, mx := range cx.Methods {
		rec.Methods = append(rec.Methods, toMethod(mx))
	}

	lib := a.lib
	rec.Library = &lib
	rec.URL, rec.FrameURL = a.classURLs(className)

	return rec
}

func toMethod(mx methodXML) domain.MethodRecord {
	m := domain.MethodRecord{
		Name:        mx.Name,
		Deprecated:  mx.Deprecated,
		Modifiers:   splitModifiers(mx.Modifiers),
		Description: strings.TrimSpace(mx.Description),
		URLAnchor:   mx.Anchor,
	}
	for _, px := range mx.Parameters {
		m.Parameters = append(m.Parameters, domain.ParameterRecord{
			Type:  domain.NewClassName(px.Type),
			Array: px.Array,
		})
	}
	if m.URLAnchor == "" {
		m.URLAnchor = m.Signature()
	}
	return m
}

// classURLs derives the documentation URLs for a class. A javadocUrlPattern
// takes precedence: its "{path}" placeholder is replaced with the
// slash-separated class path, and the frame URL equals the plain URL.
// Otherwise the URLs are built from the base URL; without a base URL the
// class has no documentation link.
func (a *Archive) classURLs(name domain.ClassName) (string, string) {
	path := strings.ReplaceAll(name.FullyQualified, ".", "/")

	if pattern := a.lib.JavadocURLPattern; pattern != "" {
		url := strings.ReplaceAll(pattern, "{path}", path)
		return url, url
	}

	base := a.lib.BaseURL
	if base == "" {
		return "", ""
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + path + ".html", base + "index.html?" + path + ".html"
}

// entryClassName maps a ZIP entry path to a fully qualified class name.
func entryClassName(entry string) string {
	entry = strings.TrimSuffix(entry, ".xml")
	return strings.ReplaceAll(entry, "/", ".")
}

func splitModifiers(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Fields(s)
}
