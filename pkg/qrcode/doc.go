// Package qrcode renders short strings, such as a composed mailto URI, as
// PNG QR codes.
//
// DataURI returns the image as a data: URI so pages can inline it:
//
//	src, err := qrcode.DataURI(msg.EncodedURI, 0)
//	if err == nil {
//	    // <img src="{src}">
//	}
//
// Content longer than a QR code can carry fails with ErrContentTooLong;
// callers are expected to omit the image in that case.
package qrcode
