package presentation

import "fmt"

// ToneMapping is the operator that maps HDR color into display range.
type ToneMapping uint8

const (
	ToneMappingNone       ToneMapping = iota
	ToneMappingReinhard
	ToneMappingACESFilmic
	ToneMappingFilmic
	ToneMappingLottes
	ToneMappingUchimura
	ToneMappingUnreal
)

var toneMappingNames = [...]string{
	ToneMappingNone:       "None",
	ToneMappingReinhard:   "Reinhard",
	ToneMappingACESFilmic: "ACESFilmic",
	ToneMappingFilmic:     "Filmic",
	ToneMappingLottes:     "Lottes",
	ToneMappingUchimura:   "Uchimura",
	ToneMappingUnreal:     "Unreal",
}

// String returns the member name, or "ToneMapping(n)" for values outside the enum.
func (v ToneMapping) String() string {
	if int(v) < len(toneMappingNames) {
		return toneMappingNames[v]
	}
	return fmt.Sprintf("ToneMapping(%d)", uint8(v))
}

// LightType is the kind of a light source.
type LightType uint8

const (
	LightTypeDirectional LightType = iota
	LightTypePoint
	LightTypeSpot
	LightTypeAmbient
)

var lightTypeNames = [...]string{
	LightTypeDirectional: "Directional",
	LightTypePoint:       "Point",
	LightTypeSpot:        "Spot",
	LightTypeAmbient:     "Ambient",
}

func (v LightType) String() string {
	if int(v) < len(lightTypeNames) {
		return lightTypeNames[v]
	}
	return fmt.Sprintf("LightType(%d)", uint8(v))
}

// MaterialShadingModel is the lighting model a material is shaded with.
type MaterialShadingModel uint8

const (
	MaterialShadingModelPBR     MaterialShadingModel = iota
	MaterialShadingModelPhong
	MaterialShadingModelLambert
	MaterialShadingModelToon
	MaterialShadingModelUnlit
)

var materialShadingModelNames = [...]string{
	MaterialShadingModelPBR:     "PBR",
	MaterialShadingModelPhong:   "Phong",
	MaterialShadingModelLambert: "Lambert",
	MaterialShadingModelToon:    "Toon",
	MaterialShadingModelUnlit:   "Unlit",
}

func (v MaterialShadingModel) String() string {
	if int(v) < len(materialShadingModelNames) {
		return materialShadingModelNames[v]
	}
	return fmt.Sprintf("MaterialShadingModel(%d)", uint8(v))
}

// BackgroundMode is what is drawn behind the scene.
type BackgroundMode uint8

const (
	BackgroundModeColor       BackgroundMode = iota
	BackgroundModeCubeMap
	BackgroundModeSkybox
	BackgroundModeEnvironment
	BackgroundModeNone
)

var backgroundModeNames = [...]string{
	BackgroundModeColor:       "Color",
	BackgroundModeCubeMap:     "CubeMap",
	BackgroundModeSkybox:      "Skybox",
	BackgroundModeEnvironment: "Environment",
	BackgroundModeNone:        "None",
}

func (v BackgroundMode) String() string {
	if int(v) < len(backgroundModeNames) {
		return backgroundModeNames[v]
	}
	return fmt.Sprintf("BackgroundMode(%d)", uint8(v))
}

// BufferType is the role of a GPU buffer.
type BufferType uint8

const (
	BufferTypeVertex   BufferType = iota
	BufferTypeElement
	BufferTypeInstance
	BufferTypeUniform
)

var bufferTypeNames = [...]string{
	BufferTypeVertex:   "Vertex",
	BufferTypeElement:  "Element",
	BufferTypeInstance: "Instance",
	BufferTypeUniform:  "Uniform",
}

func (v BufferType) String() string {
	if int(v) < len(bufferTypeNames) {
		return bufferTypeNames[v]
	}
	return fmt.Sprintf("BufferType(%d)", uint8(v))
}

// StereoMode is the eye layout for stereoscopic output.
type StereoMode uint8

const (
	StereoModeMono       StereoMode = iota
	StereoModeLeft
	StereoModeRight
	StereoModeSideBySide
	StereoModeTopBottom
)

var stereoModeNames = [...]string{
	StereoModeMono:       "Mono",
	StereoModeLeft:       "Left",
	StereoModeRight:      "Right",
	StereoModeSideBySide: "SideBySide",
	StereoModeTopBottom:  "TopBottom",
}

func (v StereoMode) String() string {
	if int(v) < len(stereoModeNames) {
		return stereoModeNames[v]
	}
	return fmt.Sprintf("StereoMode(%d)", uint8(v))
}

// ViewportScaling is how rendered output is fitted to the window.
type ViewportScaling uint8

const (
	ViewportScalingStretch        ViewportScaling = iota
	ViewportScalingPreserveAspect
	ViewportScalingIntegerScale
	ViewportScalingFit
)

var viewportScalingNames = [...]string{
	ViewportScalingStretch:        "Stretch",
	ViewportScalingPreserveAspect: "PreserveAspect",
	ViewportScalingIntegerScale:   "IntegerScale",
	ViewportScalingFit:            "Fit",
}

func (v ViewportScaling) String() string {
	if int(v) < len(viewportScalingNames) {
		return viewportScalingNames[v]
	}
	return fmt.Sprintf("ViewportScaling(%d)", uint8(v))
}
