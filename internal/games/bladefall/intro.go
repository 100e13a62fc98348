package bladefall

import (
	"github.com/vovakirdan/bladefall/internal/core"
	"github.com/vovakirdan/bladefall/internal/gfx"
)

const (
	logoYPosition     = 4
	headlineYPosition = 66
	textYPosition     = 86
	sigBottomPadding  = 2
	introLineHeight   = 7
)

var logo = gfx.MustParseImage(`
##################################
#                                #
#                                #
#                                #
#                                #
#                                #
#                                #
#                                #
#                                #
#                                #
#                                #
#                                #
#                                #
#########                        #
         ########                #
                 ########        #
                         #########
                                 #
##################################
          #     #     #     #
          ##    ##    ##    ##
          # #   # #   # #   # #
          ####  ####  ####  ####
          #   # #   # #   # #   #
          ##### ##### ##### #####
                ##### ##### #####
                      ##### #####
                            #####
`)

var signature = gfx.MustParseImage(`
#   # #  #
#   # # #
 # #  ##
 # #  # #
  #   #  #
`)

var (
	introHeadline = []string{"Bladefall", "cut the way down"}
	introCredits  = []string{"Designed and", "programmed by"}
)

// Intro is the title screen. Down, right or center request the first level.
type Intro struct {
	Start bool
}

// NewIntro returns a title screen waiting for input.
func NewIntro() *Intro {
	return &Intro{}
}

func (i *Intro) ButtonDown()   { i.ButtonCenter() }
func (i *Intro) ButtonRight()  { i.ButtonCenter() }
func (i *Intro) ButtonCenter() { i.Start = true }

// Render draws the logo, the text lines and the signature.
func (i *Intro) Render(dst gfx.Canvas) {
	dst.Image(logo, core.Pt(gfx.Centered(gfx.DisplayWidth, logo.Width), logoYPosition))
	renderCenteredLines(dst, headlineYPosition, introHeadline)
	renderCenteredLines(dst, textYPosition, introCredits)

	y := gfx.DisplayHeight - signature.Height - sigBottomPadding
	dst.Image(signature, core.Pt(gfx.Centered(gfx.DisplayWidth, signature.Width), y))
}

func renderCenteredLines(dst gfx.Canvas, y int, lines []string) {
	for num, line := range lines {
		at := core.Pt(gfx.TextAlignCenter(line, gfx.DisplayWidth), y+num*introLineHeight)
		dst.Text(line, at, gfx.BaselineTop, core.ColorOn)
	}
}
