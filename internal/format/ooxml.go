package format

import (
	"archive/zip"
	"io"

	"github.com/raphi011/docbatch/internal/storage"
)

// part is a single file inside an Office Open XML package.
type part struct {
	name string
	body string
}

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

const (
	nsContentTypes = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsPackageRels  = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsDrawing      = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsRelations    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPresentation = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsWordML       = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

	relOfficeDocument = nsRelations + "/officeDocument"
	relSlideMaster    = nsRelations + "/slideMaster"
	relSlideLayout    = nsRelations + "/slideLayout"
	relTheme          = nsRelations + "/theme"
)

// writePackage writes parts as a zip archive to w, in order.
func writePackage(w io.Writer, parts []part) error {
	zw := zip.NewWriter(w)
	for _, p := range parts {
		fw, err := zw.Create(p.name)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(fw, xmlHeader+p.body); err != nil {
			return err
		}
	}
	return zw.Close()
}

// createDocument writes a word-processing document with one empty paragraph.
func createDocument(path string) error {
	return storage.WriteWith(path, func(w io.Writer) error {
		return writePackage(w, documentParts)
	})
}

// createPresentation writes a presentation with a master, one blank layout
// and no slides.
func createPresentation(path string) error {
	return storage.WriteWith(path, func(w io.Writer) error {
		return writePackage(w, presentationParts)
	})
}

var documentParts = []part{
	{
		name: "[Content_Types].xml",
		body: `<Types xmlns="` + nsContentTypes + `">` +
			`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
			`<Default Extension="xml" ContentType="application/xml"/>` +
			`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
			`</Types>`,
	},
	{
		name: "_rels/.rels",
		body: `<Relationships xmlns="` + nsPackageRels + `">` +
			`<Relationship Id="rId1" Type="` + relOfficeDocument + `" Target="word/document.xml"/>` +
			`</Relationships>`,
	},
	{
		name: "word/document.xml",
		body: `<w:document xmlns:w="` + nsWordML + `">` +
			`<w:body><w:p/></w:body>` +
			`</w:document>`,
	},
}

const emptyShapeTree = `<p:spTree>` +
	`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>` +
	`<p:grpSpPr/>` +
	`</p:spTree>`

const pmlNamespaces = `xmlns:a="` + nsDrawing + `" xmlns:r="` + nsRelations + `" xmlns:p="` + nsPresentation + `"`

var presentationParts = []part{
	{
		name: "[Content_Types].xml",
		body: `<Types xmlns="` + nsContentTypes + `">` +
			`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
			`<Default Extension="xml" ContentType="application/xml"/>` +
			`<Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/>` +
			`<Override PartName="/ppt/slideMasters/slideMaster1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"/>` +
			`<Override PartName="/ppt/slideLayouts/slideLayout1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"/>` +
			`<Override PartName="/ppt/theme/theme1.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/>` +
			`</Types>`,
	},
	{
		name: "_rels/.rels",
		body: `<Relationships xmlns="` + nsPackageRels + `">` +
			`<Relationship Id="rId1" Type="` + relOfficeDocument + `" Target="ppt/presentation.xml"/>` +
			`</Relationships>`,
	},
	{
		name: "ppt/presentation.xml",
		body: `<p:presentation ` + pmlNamespaces + `>` +
			`<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>` +
			`<p:sldSz cx="9144000" cy="6858000" type="screen4x3"/>` +
			`<p:notesSz cx="6858000" cy="9144000"/>` +
			`</p:presentation>`,
	},
	{
		name: "ppt/_rels/presentation.xml.rels",
		body: `<Relationships xmlns="` + nsPackageRels + `">` +
			`<Relationship Id="rId1" Type="` + relSlideMaster + `" Target="slideMasters/slideMaster1.xml"/>` +
			`<Relationship Id="rId2" Type="` + relTheme + `" Target="theme/theme1.xml"/>` +
			`</Relationships>`,
	},
	{
		name: "ppt/slideMasters/slideMaster1.xml",
		body: `<p:sldMaster ` + pmlNamespaces + `>` +
			`<p:cSld>` + emptyShapeTree + `</p:cSld>` +
			`<p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>` +
			`<p:sldLayoutIdLst><p:sldLayoutId id="2147483649" r:id="rId1"/></p:sldLayoutIdLst>` +
			`</p:sldMaster>`,
	},
	{
		name: "ppt/slideMasters/_rels/slideMaster1.xml.rels",
		body: `<Relationships xmlns="` + nsPackageRels + `">` +
			`<Relationship Id="rId1" Type="` + relSlideLayout + `" Target="../slideLayouts/slideLayout1.xml"/>` +
			`<Relationship Id="rId2" Type="` + relTheme + `" Target="../theme/theme1.xml"/>` +
			`</Relationships>`,
	},
	{
		name: "ppt/slideLayouts/slideLayout1.xml",
		body: `<p:sldLayout ` + pmlNamespaces + ` type="blank" preserve="1">` +
			`<p:cSld name="Blank">` + emptyShapeTree + `</p:cSld>` +
			`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>` +
			`</p:sldLayout>`,
	},
	{
		name: "ppt/slideLayouts/_rels/slideLayout1.xml.rels",
		body: `<Relationships xmlns="` + nsPackageRels + `">` +
			`<Relationship Id="rId1" Type="` + relSlideMaster + `" Target="../slideMasters/slideMaster1.xml"/>` +
			`</Relationships>`,
	},
	{
		name: "ppt/theme/theme1.xml",
		body: `<a:theme xmlns:a="` + nsDrawing + `" name="Office Theme">` +
			`<a:themeElements>` +
			`<a:clrScheme name="Office">` +
			`<a:dk1><a:sysClr val="windowText" lastClr="000000"/></a:dk1>` +
			`<a:lt1><a:sysClr val="window" lastClr="FFFFFF"/></a:lt1>` +
			`<a:dk2><a:srgbClr val="1F497D"/></a:dk2>` +
			`<a:lt2><a:srgbClr val="EEECE1"/></a:lt2>` +
			`<a:accent1><a:srgbClr val="4F81BD"/></a:accent1>` +
			`<a:accent2><a:srgbClr val="C0504D"/></a:accent2>` +
			`<a:accent3><a:srgbClr val="9BBB59"/></a:accent3>` +
			`<a:accent4><a:srgbClr val="8064A2"/></a:accent4>` +
			`<a:accent5><a:srgbClr val="4BACC6"/></a:accent5>` +
			`<a:accent6><a:srgbClr val="F79646"/></a:accent6>` +
			`<a:hlink><a:srgbClr val="0000FF"/></a:hlink>` +
			`<a:folHlink><a:srgbClr val="800080"/></a:folHlink>` +
			`</a:clrScheme>` +
			`<a:fontScheme name="Office">` +
			`<a:majorFont><a:latin typeface="Calibri"/><a:ea typeface=""/><a:cs typeface=""/></a:majorFont>` +
			`<a:minorFont><a:latin typeface="Calibri"/><a:ea typeface=""/><a:cs typeface=""/></a:minorFont>` +
			`</a:fontScheme>` +
			`<a:fmtScheme name="Office">` +
			`<a:fillStyleLst>` + solidFill + solidFill + solidFill + `</a:fillStyleLst>` +
			`<a:lnStyleLst>` + line + line + line + `</a:lnStyleLst>` +
			`<a:effectStyleLst>` + effect + effect + effect + `</a:effectStyleLst>` +
			`<a:bgFillStyleLst>` + solidFill + solidFill + solidFill + `</a:bgFillStyleLst>` +
			`</a:fmtScheme>` +
			`</a:themeElements>` +
			`</a:theme>`,
	},
}

const (
	solidFill = `<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>`
	line      = `<a:ln w="9525">` + solidFill + `</a:ln>`
	effect    = `<a:effectStyle><a:effectLst/></a:effectStyle>`
)
