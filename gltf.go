package prism

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/ext/lightspunctual"
	"github.com/qmuntal/gltf/modeler"
)

const (
	extLightsPunctual = "KHR_lights_punctual"
	extMaterialsUnlit = "KHR_materials_unlit"
)

// GLTFLoadOptions alters how LoadGLTFData and LoadGLTFFile load a file.
type GLTFLoadOptions struct {
	// If LoadTextures is true, images embedded in the file (in buffer views or data URIs) are decoded into the Textures' Source.
	// Images referenced by external URI are never loaded; their Textures only have SourceURL set.
	LoadTextures bool
	// If ConvertColorsTosRGB is true, material and light colors are converted from the linear values glTF stores into sRGB.
	ConvertColorsTosRGB bool
	// If ExtrasAsValues is true, a material's "extras" object is applied to the loaded Material through SetValues, so
	// extras like {"wireframe": true} carry over.
	ExtrasAsValues bool
	// PointLightEnergyScale divides point light intensities, which modelers export in watts.
	PointLightEnergyScale float32
}

// DefaultGLTFLoadOptions creates an instance of GLTFLoadOptions with some sensible defaults.
func DefaultGLTFLoadOptions() *GLTFLoadOptions {
	return &GLTFLoadOptions{
		LoadTextures:          true,
		ConvertColorsTosRGB:   true,
		ExtrasAsValues:        true,
		PointLightEnergyScale: 80,
	}
}

// LoadGLTFFile loads a .gltf or .glb file from the filepath given, using a provided GLTFLoadOptions struct to alter how the file is loaded.
// Passing nil for loadOptions will load the file using default load options.
func LoadGLTFFile(path string, loadOptions *GLTFLoadOptions) (*Library, error) {

	fileData, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	return LoadGLTFData(fileData, loadOptions)

}

// LoadGLTFData loads the Materials, Textures and punctual Lights of a .gltf or .glb file from the byte data given into a new Library.
// Unlit materials become MeshBasicMaterials; everything else becomes a MeshPhongMaterial approximating the PBR parameters.
// Passing nil for gltfLoadOptions will load the file using default load options.
func LoadGLTFData(data []byte, gltfLoadOptions *GLTFLoadOptions) (*Library, error) {

	decoder := gltf.NewDecoder(bytes.NewReader(data))

	doc := gltf.NewDocument()

	if err := decoder.Decode(doc); err != nil {
		return nil, fmt.Errorf("error decoding glTF data: %w", err)
	}

	if gltfLoadOptions == nil {
		gltfLoadOptions = DefaultGLTFLoadOptions()
	}

	library := NewLibrary()

	textures := make([]*Texture, len(doc.Images))

	for i, gltfImage := range doc.Images {

		name := gltfImage.Name
		if name == "" {
			name = fmt.Sprintf("image%d", i)
		}

		tex := NewTexture(name, nil)

		if gltfLoadOptions.LoadTextures {

			imageData, err := gltfImageData(doc, gltfImage)
			if err != nil {
				return nil, fmt.Errorf("error reading image %q: %w", name, err)
			}

			if imageData != nil {
				img, err := DecodeImage(imageData)
				if err != nil {
					return nil, fmt.Errorf("error decoding image %q: %w", name, err)
				}
				tex.SetSource(img)
			}

		}

		if gltfImage.BufferView == nil && !strings.HasPrefix(gltfImage.URI, "data:") {
			tex.SourceURL = gltfImage.URI
		}

		textures[i] = tex
		library.AddTexture(tex)

	}

	textureFor := func(info *gltf.TextureInfo) *Texture {
		if info == nil || info.Index >= len(doc.Textures) {
			return nil
		}
		source := doc.Textures[info.Index].Source
		if source == nil || *source >= len(textures) {
			return nil
		}
		return textures[*source]
	}

	for i, gltfMat := range doc.Materials {

		name := gltfMat.Name
		if name == "" {
			name = fmt.Sprintf("material%d", i)
		}

		color := NewColor(1, 1, 1, 1)
		var baseColorTexture *Texture
		metallic, roughness := 1.0, 1.0

		if pbr := gltfMat.PBRMetallicRoughness; pbr != nil {
			c := pbr.BaseColorFactorOrDefault()
			color.SetRGBA(float32(c[0]), float32(c[1]), float32(c[2]), float32(c[3]))
			baseColorTexture = textureFor(pbr.BaseColorTexture)
			metallic = float64(pbr.MetallicFactorOrDefault())
			roughness = float64(pbr.RoughnessFactorOrDefault())
		}

		emissive := NewColor(float32(gltfMat.EmissiveFactor[0]), float32(gltfMat.EmissiveFactor[1]), float32(gltfMat.EmissiveFactor[2]), 1)

		if gltfLoadOptions.ConvertColorsTosRGB {
			color.ConvertTosRGB()
			emissive.ConvertTosRGB()
		}

		var material IMaterial

		if _, unlit := gltfMat.Extensions[extMaterialsUnlit]; unlit {
			basic := NewMeshBasicMaterial(nil)
			basic.Color.SetRGB(color.R, color.G, color.B)
			basic.Map = baseColorTexture
			material = basic
		} else {
			phong := NewMeshPhongMaterial(nil)
			phong.Color.SetRGB(color.R, color.G, color.B)
			phong.Emissive.Copy(emissive)
			phong.Shininess = shininessFromRoughness(roughness)
			phong.Metal = metallic >= 0.5
			phong.Map = baseColorTexture
			phong.NormalMap = textureFor(normalTextureInfo(gltfMat.NormalTexture))
			material = phong
		}

		base := material.Base()
		base.Name = name
		base.Opacity = float64(color.A)

		if gltfMat.DoubleSided {
			base.Side = DoubleSide
		}

		switch gltfMat.AlphaMode {
		case gltf.AlphaBlend:
			base.Transparent = true
		case gltf.AlphaMask:
			base.AlphaTest = float64(gltfMat.AlphaCutoffOrDefault())
		}

		if gltfLoadOptions.ExtrasAsValues {
			if dataMap, isMap := gltfMat.Extras.(map[string]any); isMap {
				material.SetValues(Values(dataMap))
			}
		}

		library.AddMaterial(material)

	}

	if err := loadGLTFLights(doc, library, gltfLoadOptions); err != nil {
		return nil, err
	}

	return library, nil

}

func loadGLTFLights(doc *gltf.Document, library *Library, options *GLTFLoadOptions) error {

	ext, exists := doc.Extensions[extLightsPunctual]
	if !exists {
		return nil
	}

	lights, ok := ext.(lightspunctual.Lights)
	if !ok {
		return fmt.Errorf("unexpected %s extension data (%T)", extLightsPunctual, ext)
	}

	for _, node := range doc.Nodes {

		lighting, exists := node.Extensions[extLightsPunctual]
		if !exists {
			continue
		}

		index, ok := lighting.(lightspunctual.LightIndex)
		if !ok || int(index) >= len(lights) {
			return fmt.Errorf("node %q refers to a missing light", node.Name)
		}

		lightData := lights[index]
		c := lightData.ColorOrDefault()
		r, g, b := float32(c[0]), float32(c[1]), float32(c[2])
		intensity := float32(lightData.IntensityOrDefault())

		var light ILight

		switch lightData.Type {
		case lightspunctual.TypeDirectional:
			light = NewDirectionalLight(node.Name, r, g, b, intensity) // Sun is in "energy"
		case lightspunctual.TypePoint:
			scale := options.PointLightEnergyScale
			if scale <= 0 {
				scale = 1
			}
			pointLight := NewPointLight(node.Name, r, g, b, intensity/scale) // Point lights have wattage energy
			if lightData.Range != nil && !math.IsInf(float64(*lightData.Range), 0) {
				pointLight.Range = float64(*lightData.Range)
			}
			light = pointLight
		default:
			// Any unsupported light type just gets turned into an ambient light
			light = NewAmbientLight(node.Name, r, g, b, intensity)
		}

		if options.ConvertColorsTosRGB {
			light.LightBase().Color.ConvertTosRGB()
		}

		light.SetLocalPosition(float64(node.Translation[0]), float64(node.Translation[1]), float64(node.Translation[2]))
		light.SetLocalScale(float64(node.Scale[0]), float64(node.Scale[1]), float64(node.Scale[2]))
		light.SetLocalRotation(mgl64.Quat{
			W: float64(node.Rotation[3]),
			V: mgl64.Vec3{float64(node.Rotation[0]), float64(node.Rotation[1]), float64(node.Rotation[2])},
		})

		if dataMap, isMap := node.Extras.(map[string]any); isMap {
			for propName, value := range dataMap {
				light.Properties().Get(propName).Set(value)
			}
		}

		library.AddLight(light)

	}

	return nil

}

func normalTextureInfo(normal *gltf.NormalTexture) *gltf.TextureInfo {
	if normal == nil || normal.Index == nil {
		return nil
	}
	return &gltf.TextureInfo{Index: *normal.Index}
}

// gltfImageData returns the bytes of an image stored in a buffer view or a data URI, or nil if the image is external.
func gltfImageData(doc *gltf.Document, img *gltf.Image) ([]byte, error) {

	if img.BufferView != nil {
		if *img.BufferView >= len(doc.BufferViews) {
			return nil, fmt.Errorf("buffer view %d doesn't exist", *img.BufferView)
		}
		return modeler.ReadBufferView(doc, doc.BufferViews[*img.BufferView])
	}

	if rest, isData := strings.CutPrefix(img.URI, "data:"); isData {
		_, payload, found := strings.Cut(rest, ";base64,")
		if !found {
			return nil, fmt.Errorf("only base64 data URIs are supported")
		}
		return base64.StdEncoding.DecodeString(payload)
	}

	return nil, nil

}

// shininessFromRoughness maps a PBR roughness (0 to 1) onto a Phong shininess exponent.
func shininessFromRoughness(roughness float64) float64 {
	roughness = clamp(roughness, 0.05, 1)
	return clamp(2/(roughness*roughness*roughness*roughness)-2, 0, 1000)
}

// roughnessFromShininess is the inverse of shininessFromRoughness.
func roughnessFromShininess(shininess float64) float64 {
	return clamp(math.Pow(2/(clamp(shininess, 0, 1000)+2), 0.25), 0, 1)
}

// ExportGLTF builds a glTF document holding the given Materials. Colors are written as the linear values glTF expects.
// Phong shininess is approximated as roughness; other Material kinds export their color (if any) and render state.
// Textures are not exported.
func ExportGLTF(materials ...IMaterial) *gltf.Document {

	doc := gltf.NewDocument()
	unlitUsed := false

	for _, material := range materials {

		base := material.Base()

		color := NewColor(1, 1, 1, 1)
		var emissive *Color
		roughness := 1.0
		metallic := 0.0
		unlit := false

		switch m := material.(type) {
		case *MeshBasicMaterial:
			color.Copy(m.Color)
			unlit = true
		case *MeshLambertMaterial:
			color.Copy(m.Color)
			emissive = m.Emissive.Clone()
		case *MeshPhongMaterial:
			color.Copy(m.Color)
			emissive = m.Emissive.Clone()
			roughness = roughnessFromShininess(m.Shininess)
			if m.Metal {
				metallic = 1
			}
		case *PointCloudMaterial:
			color.Copy(m.Color)
			unlit = true
		case *SpriteMaterial:
			color.Copy(m.Color)
			unlit = true
		}

		color.ConvertToLinear()

		gltfMat := &gltf.Material{
			Name:        base.Name,
			DoubleSided: base.Side == DoubleSide,
			AlphaMode:   gltf.AlphaOpaque,
			PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
				BaseColorFactor: &[4]float64{float64(color.R), float64(color.G), float64(color.B), base.Opacity},
				MetallicFactor:  ptr(metallic),
				RoughnessFactor: ptr(roughness),
			},
		}

		if base.Transparent {
			gltfMat.AlphaMode = gltf.AlphaBlend
		} else if base.AlphaTest > 0 {
			gltfMat.AlphaMode = gltf.AlphaMask
			gltfMat.AlphaCutoff = ptr(base.AlphaTest)
		}

		if emissive != nil {
			emissive.ConvertToLinear()
			gltfMat.EmissiveFactor = [3]float64{float64(emissive.R), float64(emissive.G), float64(emissive.B)}
		}

		if unlit {
			unlitUsed = true
			gltfMat.Extensions = gltf.Extensions{extMaterialsUnlit: map[string]any{}}
		}

		gltfMat.Extras = map[string]any{"type": base.Type(), "uuid": base.UUID()}

		doc.Materials = append(doc.Materials, gltfMat)

	}

	if unlitUsed {
		doc.ExtensionsUsed = append(doc.ExtensionsUsed, extMaterialsUnlit)
	}

	return doc

}

// WriteGLTF writes the given Materials to w as a glTF (JSON) document.
func WriteGLTF(w io.Writer, materials ...IMaterial) error {
	encoder := gltf.NewEncoder(w)
	encoder.AsBinary = false
	if err := encoder.Encode(ExportGLTF(materials...)); err != nil {
		return fmt.Errorf("error encoding glTF: %w", err)
	}
	return nil
}
