package content

import (
	"fmt"
	"strings"

	types "github.com/stainsolver/stainsolver-backend/internal/domain"
	"github.com/stainsolver/stainsolver-backend/internal/domain/catalog"
)

// GenerateFAQs returns 3 to 5 question/answer pairs: prevention, set-in remediation and
// time-to-permanence always, then a material caveat and a stain-category caveat when one applies.
func GenerateFAQs(stain *types.Stain, material *types.Material, preTreatment, washMethod string, warnings []string) []FAQ {
	seed := pairSeed(stain, material)
	sn, mn := stainLabel(stain), materialLabel(material)

	faqs := make([]FAQ, 0, 5)
	faqs = append(faqs,
		preventionFAQ(seed, sn, mn, material),
		setInFAQ(seed, sn, mn, preTreatment, washMethod, warnings),
		permanenceFAQ(seed, sn, mn),
	)
	if f, ok := materialFAQ(seed, sn, mn, material); ok {
		faqs = append(faqs, f)
	}
	if f, ok := categoryFAQ(seed, sn, mn, stain); ok {
		faqs = append(faqs, f)
	}
	return faqs
}

func variant(seed uint64, salt string, phrasings ...string) string {
	return phrasings[pick(seed, salt, len(phrasings))]
}

func preventionFAQ(seed uint64, sn, mn string, material *types.Material) FAQ {
	q := variant(seed, "faq-prevention",
		fmt.Sprintf("How can I prevent %s stains on %s?", sn, mn),
		fmt.Sprintf("What's the best way to keep %s from staining %s?", sn, mn),
		fmt.Sprintf("Can %s stains on %s be prevented?", sn, mn),
	)

	var tip string
	switch materialType(material) {
	case catalog.MaterialNatural:
		tip = "Consider applying a fabric protector designed for natural fibers."
	case catalog.MaterialSynthetic:
		tip = "Many synthetic fabrics come with stain resistance, but reapplying fabric protector after several washes helps maintain this property."
	case catalog.MaterialLeather:
		tip = "Condition and seal the leather regularly so spills bead up instead of soaking in."
	case catalog.MaterialHardSurface:
		tip = "Keep the surface sealed and wipe up spills before they have time to penetrate."
	default:
		tip = "Regular maintenance and prompt cleaning of spills is the best prevention strategy."
	}
	a := variant(seed, "faq-prevention-answer",
		fmt.Sprintf("The best prevention is quick action. For %s, immediately blot (don't rub) any spills with a clean cloth. %s", mn, tip),
		fmt.Sprintf("Act fast: blot spills on %s with a clean cloth as soon as they happen, without rubbing. %s", mn, tip),
	)
	return FAQ{Question: q, Answer: a}
}

func setInFAQ(seed uint64, sn, mn, preTreatment, washMethod string, warnings []string) FAQ {
	q := variant(seed, "faq-setin",
		fmt.Sprintf("Can I remove a %s stain from %s that has already set?", sn, mn),
		fmt.Sprintf("What if the %s stain on my %s is old?", sn, mn),
		fmt.Sprintf("Is it too late to treat a set-in %s stain on %s?", sn, mn),
	)

	method := "the same method"
	if strings.TrimSpace(preTreatment) != "" || strings.TrimSpace(washMethod) != "" {
		method = "the pre-treatment and wash method in this guide"
	}
	a := variant(seed, "faq-setin-answer",
		fmt.Sprintf("Set-in stains are harder but often still treatable. Repeat %s two or three times, letting the solution sit longer on each pass, and air dry between attempts rather than using a dryer.", method),
		fmt.Sprintf("Often, yes. Work through %s again, give the cleaning solution extra time to penetrate, and check the result after the item has air dried before trying again.", method),
	)
	if len(warnings) > 0 {
		if w := strings.TrimSpace(warnings[0]); w != "" {
			a += " Keep this in mind: " + ensurePeriod(w)
		}
	}
	return FAQ{Question: q, Answer: a}
}

func permanenceFAQ(seed uint64, sn, mn string) FAQ {
	q := variant(seed, "faq-permanence",
		fmt.Sprintf("How long before a %s stain becomes permanent on %s?", sn, mn),
		fmt.Sprintf("How quickly does %s set into %s?", sn, mn),
	)
	a := variant(seed, "faq-permanence-answer",
		fmt.Sprintf("%s stains can begin to set within 24-48 hours on %s. The longer a stain remains untreated, the more difficult it becomes to remove. Heat (including hot water, dryers, or ironing) can permanently set the stain, making it nearly impossible to remove completely.", capitalize(sn), mn),
		fmt.Sprintf("Expect %s to start bonding with %s within a day or two. Heat from hot water, a dryer or an iron speeds this up dramatically, so keep the item away from heat until the stain is fully gone.", sn, mn),
	)
	return FAQ{Question: q, Answer: a}
}

func materialFAQ(seed uint64, sn, mn string, material *types.Material) (FAQ, bool) {
	if material == nil {
		return FAQ{}, false
	}
	switch material.Type {
	case catalog.MaterialNatural:
		q := variant(seed, "faq-material",
			fmt.Sprintf("Can I use bleach to remove %s stains from %s?", sn, mn),
			fmt.Sprintf("Is bleach safe for %s stains on %s?", sn, mn),
		)
		a := fmt.Sprintf("Bleach is not recommended for %s as it can damage the fibers and cause discoloration. Stick to the gentler methods described in this guide.", mn)
		if material.Name == "cotton" {
			a = "Chlorine bleach can be used on white cotton items but may weaken fibers over time. For colored cotton, use only oxygen bleach to avoid color damage."
		}
		return FAQ{Question: q, Answer: a}, true
	case catalog.MaterialSynthetic:
		q := variant(seed, "faq-material",
			fmt.Sprintf("Can I use hot water on %s?", mn),
			fmt.Sprintf("What water temperature is safe for %s?", mn),
		)
		a := fmt.Sprintf("Stick to cool or lukewarm water. High heat can melt or warp synthetic fibers in %s and may fix the %s stain in place.", mn, sn)
		return FAQ{Question: q, Answer: a}, true
	case catalog.MaterialLeather:
		q := variant(seed, "faq-material",
			fmt.Sprintf("Will treating this %s stain damage my %s?", sn, mn),
			fmt.Sprintf("Is it safe to clean %s off %s at home?", sn, mn),
		)
		a := fmt.Sprintf("When done properly, the methods described should not damage your %s. However, always test any cleaning solution on an inconspicuous area first. %s is sensitive to water and harsh chemicals, so use minimal moisture and dry thoroughly to prevent water stains or material damage.", mn, capitalize(mn))
		return FAQ{Question: q, Answer: a}, true
	case catalog.MaterialUpholstery:
		q := variant(seed, "faq-material",
			fmt.Sprintf("How do I avoid water rings when cleaning %s from %s?", sn, mn),
			fmt.Sprintf("Can I soak %s to get %s out?", mn, sn),
		)
		a := fmt.Sprintf("Avoid soaking %s. Use as little liquid as possible, blot from the outside of the stain inward, and feather the edges of the damp area so it dries without a ring. Check the care code on the tag before using any solvent.", mn)
		return FAQ{Question: q, Answer: a}, true
	case catalog.MaterialHardSurface:
		q := variant(seed, "faq-material",
			fmt.Sprintf("Can %s permanently stain %s?", sn, mn),
			fmt.Sprintf("Will %s leave a permanent mark on %s?", sn, mn),
		)
		var a string
		switch material.Name {
		case "marble":
			a = "Yes, marble is porous and can be permanently stained by acidic substances like wine, coffee, or fruit juices. Sealing your marble periodically helps prevent staining."
		case "wood":
			a = "Yes, wood can be permanently stained, especially if the finish is damaged or worn. The faster you treat the stain, the better chance you have of preventing permanent damage."
		default:
			a = fmt.Sprintf("With proper care and prompt cleaning, most stains can be removed from %s without permanent damage.", mn)
		}
		return FAQ{Question: q, Answer: a}, true
	}
	return FAQ{}, false
}

var proteinStains = map[string]struct{}{"blood": {}, "egg": {}, "milk": {}, "sweat": {}}

func categoryFAQ(seed uint64, sn, mn string, stain *types.Stain) (FAQ, bool) {
	if stain == nil {
		return FAQ{}, false
	}
	switch stain.Category {
	case catalog.CategoryBeverage, catalog.CategoryFood:
		q := variant(seed, "faq-category",
			fmt.Sprintf("Does the temperature of water matter when treating %s stains?", sn),
			fmt.Sprintf("Should I use hot or cold water on %s?", sn),
		)
		a := fmt.Sprintf("Yes, temperature is crucial. For %s stains, start with cold water to flush out the stain before it sets. Hot water can set some components of the stain making it permanent.", sn)
		if _, ok := proteinStains[stain.Name]; ok {
			a = "Yes, temperature is crucial. Never use hot water on protein-based stains as it cooks the protein into the fabric. Always use cold water initially."
		}
		return FAQ{Question: q, Answer: a}, true
	case catalog.CategoryOil:
		q := variant(seed, "faq-category",
			fmt.Sprintf("Why do I need dish soap for %s stains?", sn),
			fmt.Sprintf("Why does dish soap work on %s?", sn),
		)
		a := fmt.Sprintf("Dish soap is formulated to break down grease and oils, which is why it's effective on %s stains. The surfactants in dish soap help to dissolve the oil molecules so they can be rinsed away from the %s.", sn, mn)
		return FAQ{Question: q, Answer: a}, true
	case catalog.CategoryInk:
		q := variant(seed, "faq-category",
			fmt.Sprintf("Are some types of %s stains harder to remove than others?", sn),
			fmt.Sprintf("Does the kind of %s make a difference?", sn),
		)
		a := "Yes, permanent markers and certain ink formulations are designed to be waterproof and can be extremely difficult to remove completely. Ballpoint ink is typically easier to remove than permanent marker or India ink. The age of the stain also makes a significant difference, and fresh ink stains are much more responsive to treatment."
		return FAQ{Question: q, Answer: a}, true
	case catalog.CategoryBodilyFluid:
		q := variant(seed, "faq-category",
			fmt.Sprintf("Why shouldn't I use hot water on %s stains?", sn),
			fmt.Sprintf("What breaks down %s stains best?", sn),
		)
		a := fmt.Sprintf("%s stains contain proteins that bind to fibers when heated. Rinse with cold water first, then use an enzymatic stain remover, which digests the proteins so they wash out of the %s.", capitalize(sn), mn)
		return FAQ{Question: q, Answer: a}, true
	case catalog.CategoryMakeup:
		q := variant(seed, "faq-category",
			fmt.Sprintf("Does makeup remover work on %s stains?", sn),
			fmt.Sprintf("Can I use micellar water on %s?", sn),
		)
		a := fmt.Sprintf("Often it does. Most makeup combines oils and pigments, so an oil-free makeup remover or a little dish soap lifts the oily part before you rinse. Test it on a hidden spot of the %s first.", mn)
		return FAQ{Question: q, Answer: a}, true
	}
	return FAQ{}, false
}

func materialType(m *types.Material) types.MaterialType {
	if m == nil {
		return catalog.MaterialOther
	}
	return m.Type
}

func ensurePeriod(s string) string {
	if strings.HasSuffix(s, ".") || strings.HasSuffix(s, "!") || strings.HasSuffix(s, "?") {
		return s
	}
	return s + "."
}
