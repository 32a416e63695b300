// Package ocr reads the captions of a composed grid back with Tesseract.
//
// It wraps the Tesseract OCR engine (via gosseract/v2). Every caption band of
// a composite is cropped, enlarged and recognized as a single text line, and
// the reading is compared with the caption that was drawn. This tells a
// client whether the chosen font, size and colors produce legible captions.
//
// # Prerequisites
//
// Tesseract and its development headers must be installed to build this
// package:
//   - Ubuntu/Debian: apt-get install libtesseract-dev tesseract-ocr-eng
//   - macOS: brew install tesseract
//
// # Accuracy
//
// Very small captions (a font size under about 10px after scaling) are often
// misread even when they look fine. Compose at a higher resolution scale for
// the check if that happens.
package ocr
