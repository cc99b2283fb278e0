package assets

import "golang.org/x/image/font/gofont/goregular"

// FontTTF is the TrueType font used for contact sheet labels.
var FontTTF = goregular.TTF
